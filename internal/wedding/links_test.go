package wedding

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGiftWhatsAppLink(t *testing.T) {
	link := GiftWhatsAppLink("(11) 98888-7777", "Jogo de panelas", 450)

	assert.True(t, strings.HasPrefix(link, "https://wa.me/5511988887777?text="), link)

	u, err := url.Parse(link)
	require.NoError(t, err)
	msg := u.Query().Get("text")
	assert.Contains(t, msg, "Jogo de panelas")
	assert.Contains(t, msg, "R$ 450,00")
}

func TestGiftWhatsAppLinkKeepsCountryCode(t *testing.T) {
	link := GiftWhatsAppLink("+55 11 98888-7777", "Taças", 180.5)
	assert.True(t, strings.HasPrefix(link, "https://wa.me/5511988887777?"), link)
	assert.Contains(t, link, url.QueryEscape("180,50"))
}
