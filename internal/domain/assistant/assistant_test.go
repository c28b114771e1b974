package assistant

import (
	"strings"
	"testing"

	"showmyshop/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testShops() []*entity.Shop {
	return []*entity.Shop{
		{ID: uuid.New(), Name: "Sweet Spot", Products: "Bakery items, bread", Address: "Abids"},
		{ID: uuid.New(), Name: "Green Leaf", Products: "Vegetables", Address: "Kukatpally"},
		{ID: uuid.New(), Name: "Juice Junction", Products: "Fresh fruit juice", Address: "Secunderabad"},
		{ID: uuid.New(), Name: "Blue Drop", Products: "Aqua cans", Description: "water supply", Address: ""},
	}
}

func shopNames(shops []*entity.Shop) []string {
	out := make([]string, 0, len(shops))
	for _, s := range shops {
		out = append(out, s.Name)
	}

	return out
}

func TestIsShopQuery(t *testing.T) {
	t.Parallel()

	for _, msg := range []string{"Show bakeries", "any STORE open?", "find me water", "what's nearby", "list vendors"} {
		assert.True(t, IsShopQuery(msg), msg)
	}
	for _, msg := range []string{"hello", "what time do you open", "thanks"} {
		assert.False(t, IsShopQuery(msg), msg)
	}
}

func TestDetectCategory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		message string
		want    string
		found   bool
	}{
		{message: "show bakeries", want: "bakery", found: true},
		{message: "Show grocery shops", want: "grocery", found: true},
		{message: "find cakes nearby", want: "bakery", found: true},
		{message: "show fruit shops", want: "fruit", found: true},
		{message: "find shops in Hyderabad", want: "hyderabad", found: true},
		{message: "show all vendors", want: "vendor", found: true},
		{message: "show salons", found: false},
		{message: "find smartphone shops", want: "vendor", found: true},
		{message: "any smartphones?", found: false},
		{message: "the nearest supermart", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			t.Parallel()

			got, ok := DetectCategory(tt.message)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.want, got.Name)
			}
		})
	}
}

func TestMatch_ShowBakeries(t *testing.T) {
	t.Parallel()

	got := Match(testShops(), "show bakeries")
	assert.Equal(t, []string{"Sweet Spot"}, shopNames(got))
}

func TestMatch_CategoryChecksDescription(t *testing.T) {
	t.Parallel()

	got := Match(testShops(), "find water vendors nearby")
	assert.Equal(t, []string{"Blue Drop"}, shopNames(got))
}

func TestMatch_CategoryWordInsideLongerWord(t *testing.T) {
	t.Parallel()

	shops := append(testShops(), &entity.Shop{Name: "Phone Hub", Products: "smartphone repairs"})

	got := Match(shops, "smartphone repairs")
	assert.Equal(t, []string{"Phone Hub"}, shopNames(got))
}

func TestMatch_FallsBackToRawSubstring(t *testing.T) {
	t.Parallel()

	shops := []*entity.Shop{
		{Name: "show room nearby", Products: "phones"},
		{Name: "Other", Products: "phones"},
	}

	got := Match(shops, "Show room nearby")
	assert.Equal(t, []string{"show room nearby"}, shopNames(got))
}

func TestFormatMatches(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ReplyNoMatch, FormatMatches(nil))

	shops := []*entity.Shop{
		{Name: "A", Products: "tea", Address: "Road 1"},
		{Name: "B"},
		{Name: "C", Products: "milk", Address: "Road 3"},
		{Name: "D", Products: "eggs", Address: "Road 4"},
	}

	reply := FormatMatches(shops)
	lines := strings.Split(reply, "\n")
	require.GreaterOrEqual(t, len(lines), 5)
	assert.Equal(t, "I found 4 shops matching your query:", lines[0])
	assert.Equal(t, "1. A - tea (Road 1)", lines[2])
	assert.Equal(t, "2. B - General (No address)", lines[3])
	assert.Equal(t, "3. C - milk (Road 3)", lines[4])
	assert.NotContains(t, reply, "D - eggs")
	assert.True(t, strings.HasSuffix(reply, ReplyTip))
}

func TestCannedReply(t *testing.T) {
	t.Parallel()

	assert.Contains(t, CannedReply("Hello!"), "Hello there!")
	assert.Equal(t, "Most shops are open from 9:00 AM to 9:00 PM.", CannedReply("when are you open"))
	assert.Equal(t, ReplyDefault, CannedReply("tell me a joke"))
}
