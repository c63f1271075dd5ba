package widget

import (
	"fmt"
	"net/url"

	"go.uber.org/zap"
)

// Config carries the affiliate identifiers and display options baked into the
// widget URL. Values come from the environment at startup.
type Config struct {
	TRS         string
	Shmarker    string
	PromoID     string
	CampaignID  string
	Currency    string
	Locale      string
	ShowHotels  bool
	PoweredBy   bool
	ReferralURL string
}

// Embed is a fully-formed embed descriptor. The host environment is
// responsible for making it live; this layer only assembles the URL,
// attributes and markup.
type Embed struct {
	URL        string            `json:"url"`
	Attributes map[string]string `json:"attributes"`
	Snippet    string            `json:"snippet"`
}

// Bridge builds embed descriptors and fallback links from the configured
// affiliate identity.
type Bridge struct {
	cfg    Config
	logger *zap.Logger
}

// NewBridge creates a Bridge
func NewBridge(cfg Config, logger *zap.Logger) *Bridge {
	return &Bridge{cfg: cfg, logger: logger}
}

type param struct {
	key   string
	value string
}

// baseParams is the widget query string in emission order
func (b *Bridge) baseParams() []param {
	return []param{
		{"currency", b.cfg.Currency},
		{"trs", b.cfg.TRS},
		{"shmarker", b.cfg.Shmarker},
		{"show_hotels", boolString(b.cfg.ShowHotels)},
		{"powered_by", boolString(b.cfg.PoweredBy)},
		{"locale", b.cfg.Locale},
		{"searchUrl", "www.aviasales.com%2Fsearch"},
		{"primary_override", "%2332a8dd"},
		{"color_button", "%2332a8dd"},
		{"color_icons", "%2332a8dd"},
		{"dark", "%23262626"},
		{"light", "%23FFFFFF"},
		{"secondary", "%23FFFFFF"},
		{"special", "%23C4C4C4"},
		{"color_focused", "%2332a8dd"},
		{"border_radius", "0"},
		{"plain", "false"},
		{"promo_id", b.cfg.PromoID},
		{"campaign_id", b.cfg.CampaignID},
	}
}

// WidgetURL assembles the widget script URL without route parameters
func (b *Bridge) WidgetURL() string {
	pairs := b.baseParams()
	query := ""
	for i, p := range pairs {
		if i > 0 {
			query += "&"
		}
		query += url.QueryEscape(p.key) + "=" + url.QueryEscape(p.value)
	}
	return "https://tpwdgt.com/content?" + query
}

// EmbedFor returns the embed descriptor, with origin and destination set on
// the widget URL when both codes are present. A malformed rewrite falls back
// to the routeless URL with a logged warning rather than failing.
func (b *Bridge) EmbedFor(originCode, destinationCode string) Embed {
	raw := b.WidgetURL()

	if originCode != "" && destinationCode != "" {
		rewritten, err := setRouteParams(raw, originCode, destinationCode)
		if err != nil {
			b.logger.Warn("failed to rewrite widget url with route",
				zap.String("origin", originCode),
				zap.String("destination", destinationCode),
				zap.Error(err))
		} else {
			raw = rewritten
		}
	}

	attrs := map[string]string{
		"async":   "true",
		"charset": "utf-8",
		"src":     raw,
	}
	snippet := fmt.Sprintf(`<script async src="%s" charset="utf-8"></script>`, raw)

	return Embed{URL: raw, Attributes: attrs, Snippet: snippet}
}

// setRouteParams sets origin/destination query parameters on an existing URL
func setRouteParams(raw, originCode, destinationCode string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("origin", originCode)
	q.Set("destination", destinationCode)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// FallbackURL builds the tracked affiliate link surfaced when the widget
// fails to load. Returns empty when no referral URL is configured; the
// caller disables the affordance in that case. A referral URL that cannot
// be parsed is returned as-is.
func (b *Bridge) FallbackURL(originCode, destinationCode string) string {
	if b.cfg.ReferralURL == "" {
		return ""
	}
	if originCode == "" || destinationCode == "" {
		return b.cfg.ReferralURL
	}

	rewritten, err := setRouteParams(b.cfg.ReferralURL, originCode, destinationCode)
	if err != nil {
		return b.cfg.ReferralURL
	}
	return rewritten
}

func boolString(v bool) string {
	if v {
		return "true"
	}
	return "false"
}
