// Package assistant classifies chat messages and matches them against shops.
// Every message is handled on its own; there is no conversation state.
package assistant

import (
	"fmt"
	"strings"
	"unicode"

	"showmyshop/internal/domain/entity"
)

const (
	ReplyNoShops   = "Sorry, I couldn't find any shops right now."
	ReplyNoMatch   = "No exact matches found. Try asking like 'Show fruit shops' or 'Find bakeries nearby'."
	ReplyTip       = "Tip: Try 'shops in Hyderabad' or 'find water vendors nearby.'"
	ReplyUnhealthy = "Unable to fetch shops right now. Please try again later."
	ReplyDefault   = "Hmm, I didn't understand that. Try saying 'show shops' or 'find grocery vendors'."

	// MaxListed is how many matches are spelled out in a reply.
	MaxListed = 3
)

// Category groups words that identify one kind of shop.
type Category struct {
	Name  string
	Words []string
}

// Categories is checked in order; the first hit wins.
var Categories = []Category{
	{Name: "grocery", Words: []string{"vegetable", "grocery", "provision", "mart"}},
	{Name: "fruit", Words: []string{"fruit", "fruits", "juice"}},
	{Name: "bakery", Words: []string{"bakery", "snack", "cake", "pastry"}},
	{Name: "water", Words: []string{"water", "aqua", "bottle"}},
	{Name: "food", Words: []string{"food", "canteen", "restaurant", "hotel"}},
	{Name: "hyderabad", Words: []string{"hyderabad", "secunderabad", "mozamjahi"}},
	{Name: "vendor", Words: []string{"shop", "vendor", "market", "store"}},
}

var triggers = []string{"shop", "vendor", "store", "find", "nearby", "show"}

type cannedReply struct {
	key   string
	reply string
}

var cannedReplies = []cannedReply{
	{key: "hello", reply: "Hello there! You can ask me things like 'Show grocery shops' or 'Find salons nearby'."},
	{key: "hi", reply: "Hi! I'm here to help you explore local vendors."},
	{key: "help", reply: "You can try commands like:\n- Show grocery shops\n- Show all vendors\n- Find shops in Hyderabad"},
	{key: "open", reply: "Most shops are open from 9:00 AM to 9:00 PM."},
	{key: "vendor", reply: "Vendors can register from the Vendor Register page."},
}

// IsShopQuery reports whether the message asks about shops.
func IsShopQuery(message string) bool {
	lower := strings.ToLower(message)
	for _, trigger := range triggers {
		if strings.Contains(lower, trigger) {
			return true
		}
	}

	return false
}

// DetectCategory returns the first category named by the message, either by
// its name or by one of its words. Only whole words count, plurals included
// ("bakeries" names bakery, "smartphone" does not name mart).
func DetectCategory(message string) (Category, bool) {
	terms := termSet(strings.ToLower(message))

	for _, category := range Categories {
		if terms[category.Name] {
			return category, true
		}
		for _, word := range category.Words {
			if terms[word] {
				return category, true
			}
		}
	}

	return Category{}, false
}

// Match filters shops for a shop query. With a detected category a shop
// matches when any category word appears in its name, products, description
// or address; otherwise the whole message is used as a substring.
func Match(shops []*entity.Shop, message string) []*entity.Shop {
	lower := strings.ToLower(strings.TrimSpace(message))

	needles := []string{lower}
	if category, ok := DetectCategory(lower); ok {
		needles = category.Words
	}

	matched := make([]*entity.Shop, 0, len(shops))
	for _, shop := range shops {
		if shopContainsAny(shop, needles) {
			matched = append(matched, shop)
		}
	}

	return matched
}

// CannedReply answers a message that is not a shop query.
func CannedReply(message string) string {
	lower := strings.ToLower(message)
	for _, canned := range cannedReplies {
		if strings.Contains(lower, canned.key) {
			return canned.reply
		}
	}

	return ReplyDefault
}

// FormatMatches renders the reply for a shop query result.
func FormatMatches(matches []*entity.Shop) string {
	if len(matches) == 0 {
		return ReplyNoMatch
	}

	var b strings.Builder
	fmt.Fprintf(&b, "I found %d shops matching your query:\n", len(matches))
	for i, shop := range matches[:min(MaxListed, len(matches))] {
		products := shop.Products
		if products == "" {
			products = "General"
		}
		address := shop.Address
		if address == "" {
			address = "No address"
		}
		fmt.Fprintf(&b, "\n%d. %s - %s (%s)", i+1, shop.Name, products, address)
	}
	b.WriteString("\n\n")
	b.WriteString(ReplyTip)

	return b.String()
}

func shopContainsAny(shop *entity.Shop, needles []string) bool {
	fields := []string{
		strings.ToLower(shop.Name),
		strings.ToLower(shop.Products),
		strings.ToLower(shop.Description),
		strings.ToLower(shop.Address),
	}

	for _, needle := range needles {
		if needle == "" {
			continue
		}
		for _, field := range fields {
			if strings.Contains(field, needle) {
				return true
			}
		}
	}

	return false
}

// termSet splits the message into words and adds a singular form of each.
func termSet(lower string) map[string]bool {
	words := strings.FieldsFunc(lower, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	terms := make(map[string]bool, len(words)*2)
	for _, word := range words {
		terms[word] = true
		terms[singular(word)] = true
	}

	return terms
}

func singular(word string) string {
	switch {
	case strings.HasSuffix(word, "ies") && len(word) > 4:
		return strings.TrimSuffix(word, "ies") + "y"
	case strings.HasSuffix(word, "es") && len(word) > 3:
		if stem := strings.TrimSuffix(word, "es"); strings.HasSuffix(stem, "s") ||
			strings.HasSuffix(stem, "x") || strings.HasSuffix(stem, "ch") || strings.HasSuffix(stem, "sh") {
			return stem
		}

		return strings.TrimSuffix(word, "s")
	case strings.HasSuffix(word, "s") && len(word) > 3:
		return strings.TrimSuffix(word, "s")
	default:
		return word
	}
}
