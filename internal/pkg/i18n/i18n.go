package i18n

import (
	"embed"
	"sync"

	"github.com/BurntSushi/toml"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// Message IDs in the embedded catalogs
const (
	MsgUnknown         = "unknown"
	MsgUptimeNote      = "uptime_note"
	MsgForbidden       = "forbidden"
	MsgInvalidSettings = "invalid_settings"
	MsgNavbarUptime    = "navbar_uptime"
	MsgSettingsTitle   = "settings_title"
)

//go:embed locales/*.toml
var locales embed.FS

var (
	bundle     *goi18n.Bundle
	bundleErr  error
	bundleOnce sync.Once
)

// Bundle returns the message bundle loaded from the embedded catalogs
func Bundle() (*goi18n.Bundle, error) {
	bundleOnce.Do(func() {
		bundle, bundleErr = newBundle()
	})
	return bundle, bundleErr
}

func newBundle() (*goi18n.Bundle, error) {
	b := goi18n.NewBundle(language.English)
	b.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, err := locales.ReadDir("locales")
	if err != nil {
		return nil, err
	}
	for _, f := range files {
		if _, err := b.LoadMessageFileFS(locales, "locales/"+f.Name()); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// Localizer translates message IDs for one request
type Localizer struct {
	l *goi18n.Localizer
}

// New returns a localizer for the given language preferences, typically the
// raw Accept-Language header. English is used for anything unmatched.
func New(langs ...string) *Localizer {
	b, err := Bundle()
	if err != nil {
		return &Localizer{}
	}
	return &Localizer{l: goi18n.NewLocalizer(b, langs...)}
}

// T returns the translation of id. It never fails: the id itself is
// returned when no catalog has it.
func (l *Localizer) T(id string) string {
	if l == nil || l.l == nil {
		return id
	}
	msg, err := l.l.Localize(&goi18n.LocalizeConfig{MessageID: id})
	if err != nil || msg == "" {
		return id
	}
	return msg
}

// Languages lists the tags of the embedded catalogs
func Languages() []language.Tag {
	b, err := Bundle()
	if err != nil {
		return nil
	}
	return b.LanguageTags()
}
