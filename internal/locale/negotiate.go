package locale

import "golang.org/x/text/language"

var matcher = language.NewMatcher(supportedLanguageTags())

func supportedLanguageTags() []language.Tag {
	out := make([]language.Tag, len(Supported))
	for i, t := range Supported {
		out[i] = language.Make(string(t))
	}
	return out
}

// Negotiate picks the best supported language for an Accept-Language header,
// or fallback when nothing matches.
func Negotiate(acceptLanguage string, fallback Tag) Tag {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return fallback
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return fallback
	}
	return Supported[idx]
}

// Resolve chooses the language for a request: an explicit query parameter
// wins, then the saved cookie, then the Accept-Language header.
func Resolve(query, cookie, acceptLanguage string, fallback Tag) Tag {
	for _, s := range []string{query, cookie} {
		if s == "" {
			continue
		}
		if t, err := Parse(s); err == nil {
			return t
		}
	}
	return Negotiate(acceptLanguage, fallback)
}
