package extract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// extractPDF reads the text layer page by page. Fragments within a page are joined
// with a single space and pages with a newline, so an N-page document always yields
// N segments. Pages without a text layer contribute an empty segment.
func extractPDF(data []byte) (text string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			text = ""
			err = &UnsupportedContentError{Kind: KindPDF, Err: fmt.Errorf("pdf parser panic: %v", rec)}
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &UnsupportedContentError{Kind: KindPDF, Err: err}
	}

	numPages := reader.NumPage()
	pages := make([]string, 0, numPages)
	for i := 1; i <= numPages; i++ {
		pages = append(pages, pageText(reader.Page(i)))
	}
	return strings.Join(pages, "\n"), nil
}

var lineBreaks = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")

// pageText returns one fragment per text-showing operator. A TJ array is a
// single fragment: its kerning offsets are dropped and its strings concatenated.
func pageText(page pdf.Page) (text string) {
	defer func() {
		if rec := recover(); rec != nil {
			text = ""
		}
	}()
	if page.V.IsNull() {
		return ""
	}
	contents := page.V.Key("Contents")
	if contents.Kind() == pdf.Null {
		return ""
	}

	fonts := make(map[string]pdf.TextEncoding)
	for _, name := range page.Fonts() {
		fonts[name] = page.Font(name).Encoder()
	}
	var enc pdf.TextEncoding = rawEncoding{}
	decode := func(v pdf.Value) string {
		return enc.Decode(v.RawString())
	}

	var fragments []string
	add := func(s string) {
		s = lineBreaks.Replace(s)
		if s != "" {
			fragments = append(fragments, s)
		}
	}

	pdf.Interpret(contents, func(stk *pdf.Stack, op string) {
		args := make([]pdf.Value, stk.Len())
		for i := len(args) - 1; i >= 0; i-- {
			args[i] = stk.Pop()
		}
		switch op {
		case "Tf":
			if len(args) != 2 {
				return
			}
			if fontEnc, ok := fonts[args[0].Name()]; ok && fontEnc != nil {
				enc = fontEnc
			} else {
				enc = rawEncoding{}
			}
		case "Tj", "'", "\"":
			if len(args) == 0 {
				return
			}
			add(decode(args[len(args)-1]))
		case "TJ":
			if len(args) != 1 {
				return
			}
			var joined strings.Builder
			for i := 0; i < args[0].Len(); i++ {
				if item := args[0].Index(i); item.Kind() == pdf.String {
					joined.WriteString(decode(item))
				}
			}
			add(joined.String())
		}
	})
	return strings.Join(fragments, " ")
}

// rawEncoding passes string bytes through when the font has no usable encoding.
type rawEncoding struct{}

func (rawEncoding) Decode(raw string) string { return raw }
