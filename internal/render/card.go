// Package render draws the progress card sent with /start and /status.
// Rendering is pure presentation: it consumes precomputed progress figures
// and never touches storage.
package render

import (
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"strconv"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"
	xdraw "golang.org/x/image/draw"

	"compounding-bot/internal/locale"
	"compounding-bot/internal/model"
	"compounding-bot/internal/progress"
)

const (
	cardWidth  = 900
	cardHeight = 700
	photoSize  = 150

	fontPath = "assets/fonts/DejaVuSans.ttf"
)

// Card renders the daily profile card as PNG bytes. A profile without a
// target yields a placeholder card, never an error; photo is optional and
// an undecodable one falls back to the gray avatar.
func Card(p model.Profile, res progress.Result, photo []byte) ([]byte, error) {
	dc := gg.NewContext(cardWidth, cardHeight)
	lang := p.Language

	dc.SetRGB255(30, 30, 30)
	dc.Clear()

	drawAvatar(dc, photo)

	// gg falls back to its built-in face when the bundled font is missing.
	titleFace := dc.LoadFontFace(fontPath, 40) == nil

	dc.SetRGB255(255, 255, 255)
	dc.DrawString("Compounding Tracker", 250, 95)

	if titleFace {
		_ = dc.LoadFontFace(fontPath, 28)
	}
	name := p.Name
	if name == "" {
		name = "User"
	}
	dc.DrawString(locale.T(lang, "label_name")+": "+name, 250, 150)

	if titleFace {
		_ = dc.LoadFontFace(fontPath, 22)
	}

	y := 270.0
	line := func(text string) {
		dc.DrawString(text, 50, y)
		y += 38
	}

	if !p.HasTarget() {
		line(locale.T(lang, "no_target"))
		return encode(dc)
	}

	currency := p.Currency
	t := p.Target
	line(locale.T(lang, "label_day") + ": " + strconv.Itoa(res.DaysPassed+1))
	line(locale.T(lang, "label_target") + ": " + locale.FormatMoney(currency, t.TargetAmount.InexactFloat64()))
	line(locale.T(lang, "label_start") + ": " + locale.FormatMoney(currency, t.StartAmount.InexactFloat64()))
	line(locale.T(lang, "label_rate") + ": " + t.Rate.String() + "% " + locale.T(lang, "label_per") + " " + string(t.Mode))
	line(locale.T(lang, "label_expected") + ": " + locale.FormatMoney(currency, res.ExpectedBalance))
	line(locale.T(lang, "label_profit_goal") + ": " + locale.FormatMoney(currency, res.TodayProfitGoal))
	if res.StoplossLevel != nil {
		line(locale.T(lang, "label_stoploss") + ": " + locale.FormatMoney(currency, *res.StoplossLevel))
	} else {
		line(locale.T(lang, "label_stoploss") + ": " + locale.T(lang, "label_not_set"))
	}
	line(locale.T(lang, "label_balance") + ": " + locale.FormatMoney(currency, res.CurrentBalance))

	dc.SetRGB255(0, 200, 0)
	line(locale.T(lang, "label_status") + ": " + locale.Status(lang, res.Status))

	return encode(dc)
}

// drawAvatar paints the circular profile photo, or a gray disc when the
// photo is absent or undecodable.
func drawAvatar(dc *gg.Context, photo []byte) {
	const x, y = 50, 50
	cx, cy := float64(x+photoSize/2), float64(y+photoSize/2)

	if len(photo) > 0 {
		if img, _, err := image.Decode(bytes.NewReader(photo)); err == nil {
			scaled := image.NewRGBA(image.Rect(0, 0, photoSize, photoSize))
			xdraw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), img, img.Bounds(), xdraw.Over, nil)

			dc.Push()
			dc.DrawCircle(cx, cy, photoSize/2)
			dc.Clip()
			dc.DrawImage(scaled, x, y)
			dc.ResetClip()
			dc.Pop()
			return
		}
	}

	dc.SetRGB255(100, 100, 100)
	dc.DrawCircle(cx, cy, photoSize/2)
	dc.Fill()
}

func encode(dc *gg.Context) ([]byte, error) {
	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, errors.Wrap(err, "encoding progress card")
	}
	return buf.Bytes(), nil
}
