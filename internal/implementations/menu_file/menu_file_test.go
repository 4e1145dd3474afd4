package menufile

import (
	c "digitalmenu/internal/core/domain/common"
	"digitalmenu/internal/core/domain/restaurant"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const MENU = `
owner_email: " Owner@Example.com "
name: Bistro
location: Lisbon
categories:
  - name: Starters
    display_order: 1
    children:
      - name: Soups
  - name: Mains
dishes:
  - name: Caldo verde
    description: Kale soup
    price: 6.5
    spice_level: mild
    categories: [Soups, Starters]
  - name: Bacalhau
    is_available: false
    sort_order: 2
    categories: [Mains]
`

func TestParse(t *testing.T) {
	m, err := Parse(strings.NewReader(MENU))

	assert := require.New(t)
	assert.Nil(err)
	assert.Equal(c.Email("owner@example.com"), m.OwnerEmail)
	assert.Equal("Bistro", m.Name)
	assert.Equal("Lisbon", m.Location)

	assert.Len(m.Categories, 2)
	assert.Equal(c.NewOptional(int32(1), true), m.Categories[0].DisplayOrder)
	assert.Equal("Soups", m.Categories[0].Children[0].Name)
	assert.False(m.Categories[1].DisplayOrder.IsPresent)
	assert.Empty(m.Categories[1].Children)

	assert.Len(m.Dishes, 2)
	soup := m.Dishes[0]
	assert.Equal(c.NewOptional(restaurant.Price(650), true), soup.Price)
	assert.Equal(c.NewOptional("Kale soup", true), soup.Description)
	assert.Equal(c.NewOptional("mild", true), soup.SpiceLevel)
	assert.False(soup.IsAvailable.IsPresent)
	assert.False(soup.ImageURL.IsPresent)
	assert.Equal([]string{"Soups", "Starters"}, soup.Categories)

	assert.Equal(c.NewOptional(false, true), m.Dishes[1].IsAvailable)
	assert.Equal(int32(2), m.Dishes[1].SortOrder)
	assert.Nil(m.Validate())
}

func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := Parse(strings.NewReader("name: Bistro\nowner: someone\n"))
	require.NotNil(t, err)
}

func TestParseRejectsInvalidPrice(t *testing.T) {
	_, err := Parse(strings.NewReader("name: Bistro\ndishes:\n  - name: Soup\n    price: -1\n"))
	require.ErrorIs(t, err, restaurant.ErrInvalidPrice)
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.yaml")
	require.Nil(t, os.WriteFile(path, []byte(MENU), 0o600))

	m, err := ParseFile(path)
	require.Nil(t, err)
	require.Equal(t, "Bistro", m.Name)

	_, err = ParseFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NotNil(t, err)
}
