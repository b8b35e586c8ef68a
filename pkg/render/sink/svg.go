package sink

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/matzehuels/kbdlayout/pkg/keymap"
	"github.com/matzehuels/kbdlayout/pkg/layout"
)

const svgHeader = `<?xml version="1.0" encoding="UTF-8" standalone="no"?>
<!DOCTYPE svg PUBLIC "-//W3C//DTD SVG 1.1//EN" "http://www.w3.org/Graphics/SVG/1.1/DTD/svg11.dtd">
`

// labelSwitchJS redraws every key with the labels of the active modifier
// column. Clicking a key with data-modbit toggles that bit.
const labelSwitchJS = `
    (function () {
      var active = 0;
      var keys = document.querySelectorAll('.key');
      function draw(key) {
        var text = key.querySelector('text');
        if (!text) return;
        var labels = JSON.parse(key.getAttribute('data-labels') || '[]');
        var label = labels[active];
        if (label === undefined) label = labels[0] || '';
        label = label.replace(/^\+/, '');
        while (text.firstChild) text.removeChild(text.firstChild);
        var x = text.getAttribute('x');
        label.split(' ').forEach(function (word, i) {
          var span = document.createElementNS('http://www.w3.org/2000/svg', 'tspan');
          span.setAttribute('x', x);
          span.setAttribute('dy', i === 0 ? '0' : text.getAttribute('data-line-height'));
          span.textContent = word;
          text.appendChild(span);
        });
      }
      function redraw() {
        keys.forEach(function (key) {
          draw(key);
          var bit = +key.getAttribute('data-modbit');
          key.classList.toggle('held', bit > 0 && (active & bit) !== 0);
        });
      }
      document.querySelectorAll('.key[data-modbit]').forEach(function (key) {
        key.addEventListener('click', function () {
          active ^= +key.getAttribute('data-modbit');
          redraw();
        });
      });
    })();`

// SVGOption configures RenderSVG.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	style  Style
	script bool
	title  string
}

func WithStyle(s Style) SVGOption      { return func(r *svgRenderer) { r.style = s } }
func WithoutScript() SVGOption         { return func(r *svgRenderer) { r.script = false } }
func WithTitle(title string) SVGOption { return func(r *svgRenderer) { r.title = title } }

// RenderSVG writes res as a standalone SVG document.
func RenderSVG(res layout.Result, opts ...SVGOption) []byte {
	r := svgRenderer{style: DefaultStyle(), script: true}
	for _, opt := range opts {
		opt(&r)
	}
	r.style = r.style.withDefaults()

	var buf bytes.Buffer
	buf.WriteString(svgHeader)
	fmt.Fprintf(&buf, `<svg width="%s" height="%s" viewBox="-1 -1 %s %s" xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink">`+"\n",
		num(res.Width+3), num(res.Height+3), num(res.Width+2), num(res.Height+2))

	if r.title != "" {
		fmt.Fprintf(&buf, "<title>%s</title>\n", escapeText(r.title))
	}
	r.renderCSS(&buf)

	fmt.Fprintf(&buf, `<g font-family="%s" font-size="%spx" font-size-adjust="0.518">`+"\n",
		escapeText(r.style.FontFamily), num(r.style.FontSize))
	lineHeight := lineHeightOf(res)
	for _, s := range res.Shapes {
		renderKey(&buf, s, lineHeight)
	}
	buf.WriteString("</g>\n")

	if r.script {
		fmt.Fprintf(&buf, "<script type=\"text/javascript\"><![CDATA[%s\n]]></script>\n", labelSwitchJS)
	}
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func (r svgRenderer) renderCSS(buf *bytes.Buffer) {
	s := r.style
	buf.WriteString("<style type=\"text/css\"><![CDATA[\n")
	fmt.Fprintf(buf, "    .key rect, .key polygon { fill: %s; stroke: %s; stroke-linejoin: round; }\n", s.KeyFill, s.KeyStroke)
	fmt.Fprintf(buf, "    .key.mod rect, .key.mod polygon { fill: %s; }\n", s.ModifierFill)
	fmt.Fprintf(buf, "    .key.held rect, .key.held polygon { fill: %s; }\n", s.HeldFill)
	fmt.Fprintf(buf, "    .key text { fill: %s; text-anchor: middle; }\n", s.TextFill)
	if r.script {
		buf.WriteString("    .key[data-modbit] { cursor: pointer; }\n")
	}
	buf.WriteString("]]></style>\n")
}

func renderKey(buf *bytes.Buffer, s layout.Shape, lineHeight float64) {
	class := "key"
	if s.IsModifier() {
		class += " mod"
	}
	fmt.Fprintf(buf, `  <g class="%s"`, class)
	if s.Keycode >= 0 {
		fmt.Fprintf(buf, ` data-keycode="%d"`, s.Keycode)
	}
	if bit := modifierBit(s); bit > 0 {
		fmt.Fprintf(buf, ` data-modbit="%d"`, bit)
	}
	fmt.Fprintf(buf, ` data-labels='%s'>`, labelsAttr(s.Labels))

	switch s.Kind {
	case layout.ShapePolygon:
		pts := make([]string, len(s.Points))
		for i, p := range s.Points {
			pts[i] = num(p.X) + "," + num(p.Y)
		}
		fmt.Fprintf(buf, `<polygon points="%s"/>`, strings.Join(pts, " "))
	default:
		fmt.Fprintf(buf, `<rect x="%s" y="%s" width="%s" height="%s"/>`, num(s.X), num(s.Y), num(s.Width), num(s.Height))
	}

	renderLabel(buf, s.Lines, lineHeight)
	buf.WriteString("</g>\n")
}

func renderLabel(buf *bytes.Buffer, lines []layout.TextLine, lineHeight float64) {
	if len(lines) == 0 {
		return
	}
	first := lines[0]
	fmt.Fprintf(buf, `<text x="%s" y="%s" data-line-height="%s">`, num(first.X), num(first.Y), num(lineHeight))
	if len(lines) == 1 {
		buf.WriteString(escapeText(first.Text))
	} else {
		for _, l := range lines {
			fmt.Fprintf(buf, `<tspan x="%s" y="%s">%s</tspan>`, num(l.X), num(l.Y), escapeText(l.Text))
		}
	}
	buf.WriteString("</text>")
}

// lineHeightOf recovers the wrap distance from the first wrapped label so
// the script wraps the same way the renderer did.
func lineHeightOf(res layout.Result) float64 {
	for _, s := range res.Shapes {
		if len(s.Lines) > 1 {
			return s.Lines[1].Y - s.Lines[0].Y
		}
	}
	return layout.DefaultLineHeight
}

// modifierBit is the column bit a modifier key toggles in the viewer, or 0.
func modifierBit(s layout.Shape) int {
	if !s.IsModifier() {
		return 0
	}
	name := strings.ToLower(s.Label)
	if name == "ctrl" {
		name = "control"
	}
	m, ok := keymap.ParseModifier(name)
	if !ok {
		return 0
	}
	return int(m)
}

func labelsAttr(labels []string) string {
	if labels == nil {
		labels = []string{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(labels)
	return attrEscaper.Replace(strings.TrimSuffix(buf.String(), "\n"))
}

var (
	textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
	attrEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", "'", "&#39;")
)

func escapeText(s string) string { return textEscaper.Replace(s) }

// num formats a coordinate with at most two decimals.
func num(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}
