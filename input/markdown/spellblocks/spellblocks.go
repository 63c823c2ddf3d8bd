package spellblocks

import (
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/npillmayer/grimoire/core/percent"
	"github.com/npillmayer/grimoire/input/markdown/blocks"
	"github.com/npillmayer/grimoire/input/markdown/inline"
)

// Blocks returns the spell block renderers by name.
func Blocks() map[string]blocks.Renderer {
	return map[string]blocks.Renderer{
		"code_block": blocks.RendererFunc(CodeBlock),
		"spell":      classBlock("spell-block"),
		"potion":     classBlock("potion-block"),
		"progress":   blocks.RendererFunc(ProgressBar),
	}
}

// Install registers the spell blocks with reg.
func Install(reg *blocks.Registry) error {
	for name, r := range Blocks() {
		if err := reg.Register(name, r); err != nil {
			return err
		}
	}
	tracer().Infof("spell blocks installed")
	return nil
}

// newID is replaced in tests.
var newID = uuid.NewString

// CodeBlock renders code with a button to copy it to the clipboard. The
// body is escaped and not processed otherwise.
//
// Attributes:
//
//     language          language of the code, used as a CSS class
//     has_copy_button   set to "false" to omit the copy button
//
func CodeBlock(body string, attrs *blocks.AttributeMap) string {
	id := newID()
	var b strings.Builder
	b.WriteString(`<div class="code-block">`)
	if toBool(attrs.GetOr("has_copy_button", "true"), true) {
		b.WriteString(`<button class="copy-button" data-target="` + id + `">Copy</button>`)
	}
	b.WriteString(`<pre><code`)
	if lang := attrs.GetOr("language", ""); lang != "" {
		b.WriteString(` class="language-` + inline.EscapeAttr(lang) + `"`)
	}
	b.WriteString(` id="` + id + `">`)
	b.WriteString(inline.Escape(body))
	b.WriteString(`</code></pre></div>`)
	return b.String()
}

// classBlock renders a div of a fixed CSS class, with every line of the
// body rendered as inline markup.
func classBlock(class string) blocks.Renderer {
	return blocks.RendererFunc(func(body string, attrs *blocks.AttributeMap) string {
		classes := class
		if extra := attrs.GetOr("class", ""); extra != "" {
			classes += " " + extra
		}
		return `<div class="` + inline.EscapeAttr(classes) + `">` + inline.Lines(body) + `</div>`
	})
}

// ProgressBar renders a progress bar. The body is ignored.
//
// Attributes:
//
//     value             current value, default 0
//     max_value         maximum value, default 100, must be positive
//     label             label text; {{value}}, {{max_value}} and {{percentage}}
//                       are replaced by their values
//     show_percentage   show the percentage if there is no label, default true
//     color, bg_color   color names for the bar and the background
//     height            sm, md or lg
//     striped, animated, rounded
//     class, id
//
func ProgressBar(body string, attrs *blocks.AttributeMap) string {
	value := number(attrs, "value", 0)
	maxValue := number(attrs, "max_value", 100)
	if maxValue <= 0 {
		tracer().Infof("progress: max_value must be positive, is %v; using 100", maxValue)
		maxValue = 100
	}
	clamped := value
	if clamped < 0 {
		clamped = 0
	} else if clamped > maxValue {
		clamped = maxValue
	}
	pct := percent.Of(clamped, maxValue)
	//
	label, hasLabel := attrs.Get("label")
	if hasLabel {
		label = strings.NewReplacer(
			"{{value}}", formatNumber(value),
			"{{max_value}}", formatNumber(maxValue),
			"{{percentage}}", pct.Number(),
		).Replace(label)
	} else if toBool(attrs.GetOr("show_percentage", "true"), true) {
		label = pct.String()
	}
	//
	outer := []string{"progress-container"}
	if c := attrs.GetOr("class", ""); c != "" {
		outer = append(outer, c)
	}
	track := []string{"progress", "bg-" + attrs.GetOr("bg_color", "white-50"), "progress-" + attrs.GetOr("height", "md")}
	if toBool(attrs.GetOr("rounded", "true"), true) {
		track = append(track, "rounded")
	}
	bar := []string{"progress-bar", "bg-" + attrs.GetOr("color", "primary")}
	if toBool(attrs.GetOr("striped", "false"), false) {
		bar = append(bar, "progress-bar-striped")
	}
	if toBool(attrs.GetOr("animated", "false"), false) {
		bar = append(bar, "progress-bar-animated")
	}
	//
	var b strings.Builder
	b.WriteString(`<div class="` + inline.EscapeAttr(strings.Join(outer, " ")) + `"`)
	if id := attrs.GetOr("id", ""); id != "" {
		b.WriteString(` id="` + inline.EscapeAttr(id) + `"`)
	}
	b.WriteString(`><div class="` + inline.EscapeAttr(strings.Join(track, " ")) + `">`)
	b.WriteString(`<div class="` + inline.EscapeAttr(strings.Join(bar, " ")) + `" role="progressbar"`)
	b.WriteString(` style="width: ` + pct.String() + `;"`)
	b.WriteString(` aria-valuenow="` + formatNumber(value) + `" aria-valuemin="0" aria-valuemax="` + formatNumber(maxValue) + `">`)
	b.WriteString(inline.Escape(label))
	b.WriteString(`</div></div></div>`)
	return b.String()
}

func number(attrs *blocks.AttributeMap, key string, dflt float64) float64 {
	s, ok := attrs.Get(key)
	if !ok {
		return dflt
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		tracer().Infof("progress: %s=%q is not a number; using %v", key, s, dflt)
		return dflt
	}
	return f
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func toBool(s string, dflt bool) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "t", "y", "yes":
		return true
	case "false", "0", "f", "n", "no":
		return false
	}
	return dflt
}
