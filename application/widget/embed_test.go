package widget

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig() Config {
	return Config{
		TRS:         "387747",
		Shmarker:    "605276",
		PromoID:     "7879",
		CampaignID:  "100",
		Currency:    "usd",
		Locale:      "en",
		ShowHotels:  true,
		PoweredBy:   true,
		ReferralURL: "https://tp.media/r?campaign_id=100&marker=605276",
	}
}

func TestWidgetURL(t *testing.T) {
	bridge := NewBridge(testConfig(), zap.NewNop())

	raw := bridge.WidgetURL()

	assert.True(t, strings.HasPrefix(raw, "https://tpwdgt.com/content?"))
	assert.Contains(t, raw, "trs=387747")
	assert.Contains(t, raw, "shmarker=605276")
	assert.Contains(t, raw, "promo_id=7879")
	assert.Contains(t, raw, "campaign_id=100")
	assert.Contains(t, raw, "currency=usd")
	assert.True(t, strings.HasPrefix(raw[len("https://tpwdgt.com/content?"):], "currency="),
		"currency leads the query string")
}

func TestEmbedFor_Route(t *testing.T) {
	bridge := NewBridge(testConfig(), zap.NewNop())

	embed := bridge.EmbedFor("YYZ", "LIS")

	u, err := url.Parse(embed.URL)
	require.NoError(t, err)
	q := u.Query()
	assert.Equal(t, "YYZ", q.Get("origin"))
	assert.Equal(t, "LIS", q.Get("destination"))
	assert.Equal(t, "387747", q.Get("trs"))

	assert.Equal(t, embed.URL, embed.Attributes["src"])
	assert.Equal(t, "true", embed.Attributes["async"])
	assert.Equal(t, "utf-8", embed.Attributes["charset"])
	assert.Contains(t, embed.Snippet, embed.URL)
	assert.True(t, strings.HasPrefix(embed.Snippet, "<script async src="))
}

func TestEmbedFor_NoRoute(t *testing.T) {
	bridge := NewBridge(testConfig(), zap.NewNop())

	embed := bridge.EmbedFor("", "")

	u, err := url.Parse(embed.URL)
	require.NoError(t, err)
	assert.Empty(t, u.Query().Get("origin"))
	assert.Empty(t, u.Query().Get("destination"))
}

func TestFallbackURL(t *testing.T) {
	bridge := NewBridge(testConfig(), zap.NewNop())

	raw := bridge.FallbackURL("YYZ", "LIS")
	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "YYZ", u.Query().Get("origin"))
	assert.Equal(t, "LIS", u.Query().Get("destination"))
	assert.Equal(t, "605276", u.Query().Get("marker"), "referral identity survives the rewrite")

	assert.Equal(t, testConfig().ReferralURL, bridge.FallbackURL("", ""))
}

func TestFallbackURL_Unconfigured(t *testing.T) {
	cfg := testConfig()
	cfg.ReferralURL = ""
	bridge := NewBridge(cfg, zap.NewNop())

	assert.Empty(t, bridge.FallbackURL("YYZ", "LIS"))
}
