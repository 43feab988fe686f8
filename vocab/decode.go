package vocab

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/sarthakjha889/go-vocab-trie/internal/logger"
)

// decode converts data to UTF-8. A byte order mark always wins.
func decode(data []byte) (string, error) {
	charset := "UTF-8"
	if !utf8.Valid(data) {
		charset = detect(data)
	}
	return decodeAs(data, charset)
}

// decodeAs converts data from charset to UTF-8. Unsupported charsets keep
// the bytes unchanged.
func decodeAs(data []byte, charset string) (string, error) {
	e, ok := encodingFor(charset)
	if !ok {
		logger.Logger.Printf("unsupported charset %s, keeping raw bytes", charset)
		e = encoding.Nop
	}
	text, _, err := transform.Bytes(unicode.BOMOverride(e.NewDecoder()), data)
	if err != nil {
		return "", fmt.Errorf("decode vocabulary as %s: %w", charset, err)
	}
	return string(text), nil
}

// detect guesses the charset of data. Undetectable input is reported as
// UTF-8, which keeps the bytes unchanged.
func detect(data []byte) string {
	result, err := chardet.NewTextDetector().DetectBest(data)
	if err != nil {
		logger.Logger.Printf("charset detection failed: %v, keeping raw bytes", err)
		return "UTF-8"
	}
	logger.Logger.Printf("decoding vocabulary as %s (confidence %d)", result.Charset, result.Confidence)
	return result.Charset
}

// encodingFor maps a charset name as reported by chardet to its decoder.
func encodingFor(charset string) (encoding.Encoding, bool) {
	switch strings.ToLower(charset) {
	case "utf-8":
		return encoding.Nop, true
	case "utf-16le":
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM), true
	case "utf-16be":
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM), true
	case "iso-8859-1":
		return charmap.ISO8859_1, true
	case "windows-1252":
		return charmap.Windows1252, true
	case "windows-1251":
		return charmap.Windows1251, true
	case "koi8-r":
		return charmap.KOI8R, true
	case "gb-18030", "gb18030", "gbk", "gb2312":
		return simplifiedchinese.GB18030, true
	case "big5":
		return traditionalchinese.Big5, true
	case "shift_jis":
		return japanese.ShiftJIS, true
	case "euc-jp":
		return japanese.EUCJP, true
	case "iso-2022-jp":
		return japanese.ISO2022JP, true
	case "euc-kr":
		return korean.EUCKR, true
	}
	e, err := ianaindex.IANA.Encoding(charset)
	if err != nil || e == nil {
		return nil, false
	}
	return e, true
}
