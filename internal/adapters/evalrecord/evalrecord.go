// Package evalrecord reads fields out of raw evaluation snapshot records and
// flattens them into the answer_snapshot row shape
package evalrecord

import (
	"path"
	"regexp"
	"strconv"
	"strings"

	pstrings "evalsnap/internal/platform/strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
	"golang.org/x/text/unicode/norm"
)

// ID is the decomposed `_id` of a snapshot record:
// model:test:dataset/exam_level_subject.ext:...:number
type ID struct {
	Model      string
	Test       string
	TestSet    string
	ExamName   string
	ExamLevel  string
	Subject    string
	TestNumber *int64
}

// ParseID splits a record id; missing parts stay empty
func ParseID(id string) ID {
	var out ID
	if id == "" {
		return out
	}
	parts := strings.Split(id, ":")
	out.Model = parts[0]
	if len(parts) > 1 {
		out.Test = parts[1]
	}
	if len(parts) > 2 && parts[2] != "" {
		out.TestSet = parts[2]
		parseTestSet(&out, parts[2])
	}
	if n, ok := digits(parts[len(parts)-1]); ok {
		out.TestNumber = &n
	}
	return out
}

// parseTestSet decomposes dataset/exam_level_subject.ext when the stem has at
// least three underscore parts; the subject keeps any further underscores
func parseTestSet(out *ID, raw string) {
	dir := path.Dir(raw)
	ext := path.Ext(raw)
	stem := strings.TrimSuffix(path.Base(raw), ext)
	splits := strings.Split(stem, "_")
	if len(splits) < 3 {
		return
	}
	out.ExamName = splits[0]
	out.ExamLevel = splits[1]
	out.Subject = strings.Join(splits[2:], "_")
	out.TestSet = dir + "/" + out.ExamName + "_" + out.ExamLevel + "_" + out.Subject + ext
}

func digits(s string) (int64, bool) {
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.ParseInt(s, 10, 64)
	return n, err == nil
}

var answerKeyRe = regexp.MustCompile(`"correct_answer_key"\s*:\s*"([^"]+)"`)

// CorrectAnswerKey pulls the model's chosen answer key out of its reply text
func CorrectAnswerKey(text string) string {
	m := answerKeyRe.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return m[1]
}

// QuestionText is the content of the third input message, the rendered question
func QuestionText(raw []byte) (string, bool) {
	v := gjson.GetBytes(raw, "result.inputMessages.2.content")
	if !v.Exists() || v.Type != gjson.String {
		return "", false
	}
	return norm.NFC.String(v.Str), true
}

// Time returns result.time in milliseconds
func Time(raw []byte) (float64, bool) { return number(raw, "result.time") }

// TotalTokens returns result.usage.totalTokens
func TotalTokens(raw []byte) (float64, bool) { return number(raw, "result.usage.totalTokens") }

func number(raw []byte, p string) (float64, bool) {
	v := gjson.GetBytes(raw, p)
	if v.Type != gjson.Number {
		return 0, false
	}
	return v.Num, true
}

// passthrough maps answer_snapshot columns to source paths copied as raw JSON
var passthrough = []struct{ col, src string }{
	{"attempts", "attempts"},
	{"state", "state"},
	{"lease_expires_at", "leaseExpiresAt"},
	{"updated_at", "updatedAt"},
	{"input_messages", "result.inputMessages"},
	{"temperature", "result.temperature"},
	{"finish_reason", "result.finishReason"},
	{"reasoning_details", "result.reasoningDetails"},
	{"sources", "result.sources"},
	{"text", "result.text"},
	{"time", "result.time"},
	{"prompt_tokens", "result.usage.promptTokens"},
	{"completion_tokens", "result.usage.completionTokens"},
	{"total_tokens", "result.usage.totalTokens"},
	{"warnings", "result.warnings"},
}

// Columns lists the answer_snapshot columns in table order
func Columns() []string {
	cols := []string{"_id", "model_name", "test_name", "test_set", "exam_name", "exam_level", "subject", "test_number"}
	for _, p := range passthrough {
		cols = append(cols, p.col)
	}
	return append(cols, "correct_answer_key", "question_txt")
}

// Flatten renders one snapshot record as a flat answer_snapshot row object.
// Every column is present; absent source fields become null.
func Flatten(raw []byte) ([]byte, error) {
	rawID := gjson.GetBytes(raw, "_id")
	id := ParseID(rawID.String())

	out := []byte(`{}`)
	var err error
	set := func(col string, v any) {
		if err != nil {
			return
		}
		out, err = sjson.SetBytes(out, escape(col), v)
	}
	setRaw := func(col, rawJSON string) {
		if err != nil {
			return
		}
		out, err = sjson.SetRawBytes(out, escape(col), []byte(rawJSON))
	}

	if rawID.Exists() {
		setRaw("_id", rawID.Raw)
	} else {
		set("_id", nil)
	}
	// model_name is the first id segment even when that is empty
	set("model_name", id.Model)
	set("test_name", pstrings.NullIfBlank(id.Test))
	set("test_set", pstrings.NullIfBlank(id.TestSet))
	set("exam_name", pstrings.NullIfBlank(id.ExamName))
	set("exam_level", pstrings.NullIfBlank(id.ExamLevel))
	set("subject", pstrings.NullIfBlank(id.Subject))
	if id.TestNumber != nil {
		set("test_number", *id.TestNumber)
	} else {
		set("test_number", nil)
	}

	for _, p := range passthrough {
		v := gjson.GetBytes(raw, p.src)
		switch {
		case !v.Exists():
			set(p.col, nil)
		case p.col == "text" && v.Type == gjson.String:
			set(p.col, norm.NFC.String(v.Str))
		default:
			setRaw(p.col, v.Raw)
		}
	}

	set("correct_answer_key", pstrings.NullIfBlank(CorrectAnswerKey(gjson.GetBytes(raw, "result.text").String())))
	if q, ok := QuestionText(raw); ok {
		set("question_txt", q)
	} else {
		set("question_txt", nil)
	}
	return out, err
}

// escape protects sjson path metacharacters in a literal key
func escape(key string) string {
	r := strings.NewReplacer(".", `\.`, "*", `\*`, "?", `\?`)
	return r.Replace(key)
}
