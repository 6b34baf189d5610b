package extract

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

// Subtrees of word/document.xml whose text is not body text.
var skippedDocxElements = map[string]struct{}{
	"drawing":     {},
	"pict":        {},
	"object":      {},
	"instrText":   {},
	"delText":     {},
	"footnoteRef": {},
	"pPr":         {},
	"rPr":         {},
	"tabs":        {},
}

func extractDOCX(data []byte) (string, error) {
	if len(data) == 0 {
		return "", &UnsupportedContentError{Kind: KindDOCX, Err: errors.New("empty docx data")}
	}
	reader, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &UnsupportedContentError{Kind: KindDOCX, Err: err}
	}
	defer reader.Close()

	paragraphs, err := docxParagraphs(reader.Editable().GetContent())
	if err != nil {
		return "", &UnsupportedContentError{Kind: KindDOCX, Err: err}
	}
	return strings.Join(paragraphs, "\n\n"), nil
}

// docxParagraphs walks document.xml and returns the raw text of each w:p in order.
func docxParagraphs(raw string) ([]string, error) {
	decoder := xml.NewDecoder(strings.NewReader(raw))
	var (
		paragraphs []string
		current    strings.Builder
		inText     bool
		skipDepth  int
		inPara     bool
	)
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if skipDepth > 0 {
				skipDepth++
				continue
			}
			if _, skip := skippedDocxElements[t.Name.Local]; skip {
				skipDepth = 1
				continue
			}
			switch t.Name.Local {
			case "p":
				inPara = true
				current.Reset()
			case "t":
				inText = true
			case "tab":
				current.WriteString("\t")
			case "br", "cr":
				current.WriteString("\n")
			}
		case xml.EndElement:
			if skipDepth > 0 {
				skipDepth--
				continue
			}
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				if inPara {
					paragraphs = append(paragraphs, current.String())
				}
				inPara = false
				current.Reset()
			}
		case xml.CharData:
			if inText && skipDepth == 0 {
				current.Write(t)
			}
		}
	}
	return paragraphs, nil
}
