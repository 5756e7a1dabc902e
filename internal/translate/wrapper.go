package translate

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/text/language"

	"github.com/arogyamitra/arogya-bot/internal/platform/observability"
)

// PivotLang is the language the resolution pipeline operates in.
const PivotLang = "en"

const (
	directionForward  = "forward"
	directionBackward = "backward"
)

// Wrapper runs the fail-open translation round trip. Both directions degrade
// to the untranslated text on any error; a translation failure never aborts
// a request.
type Wrapper struct {
	svc    Service
	logger *zerolog.Logger
}

func NewWrapper(svc Service, logger *zerolog.Logger) *Wrapper {
	return &Wrapper{svc: svc, logger: logger}
}

// Forward translates inbound text to the pivot language and returns the
// detected source language. On failure the original text is returned with
// the pivot language, which also disables the backward pass.
func (w *Wrapper) Forward(ctx context.Context, text string) (string, string) {
	if w.svc == nil {
		return text, PivotLang
	}

	translated, detected, err := w.svc.Translate(ctx, text, PivotLang)
	if err != nil {
		observability.TranslationFailures.WithLabelValues(directionForward).Inc()
		w.logger.Warn().Err(err).Msg("forward translation failed, using original text")

		return text, PivotLang
	}

	return translated, normalizeLang(detected)
}

// Backward translates the reply to the detected language. No call is made
// when the detected language is already the pivot; on failure the
// pivot-language reply is returned unchanged.
func (w *Wrapper) Backward(ctx context.Context, reply, detectedLang string) string {
	if w.svc == nil || detectedLang == PivotLang {
		return reply
	}

	translated, _, err := w.svc.Translate(ctx, reply, detectedLang)
	if err != nil {
		observability.TranslationFailures.WithLabelValues(directionBackward).Inc()
		w.logger.Warn().Err(err).Str("target", detectedLang).Msg("backward translation failed, returning untranslated reply")

		return reply
	}

	return translated
}

// normalizeLang validates the reported language code; anything unparseable
// collapses to the pivot so no backward pass is attempted for it.
func normalizeLang(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return PivotLang
	}

	base, _ := tag.Base()

	return base.String()
}
