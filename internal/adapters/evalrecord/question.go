package evalrecord

import (
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Question is one exam question line tagged with its source exam
type Question struct {
	Raw      []byte
	ExamName string
}

// ExamName derives the exam from a question file name: the stem before the first underscore
func ExamName(file string) string {
	stem := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
	if i := strings.IndexByte(stem, '_'); i >= 0 {
		return stem[:i]
	}
	return stem
}

// questionNo parses the `no` field for ordering; unparseable or absent sorts as 0
func questionNo(raw []byte) float64 {
	v := gjson.GetBytes(raw, "no")
	switch v.Type {
	case gjson.Number:
		return v.Num
	case gjson.String:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.Str), 64)
		if err == nil {
			return f
		}
	}
	return 0
}

// OrderQuestions tags every question with exam_name, sorts by (subject, no)
// and numbers questions within each subject from 0 as subject_index.
// Questions without a subject sort first and are numbered under "unknown".
func OrderQuestions(qs []Question) ([][]byte, error) {
	type keyed struct {
		raw     []byte
		exam    string
		subject string
		hasSubj bool
		no      float64
	}
	ks := make([]keyed, len(qs))
	for i, q := range qs {
		s := gjson.GetBytes(q.Raw, "subject")
		ks[i] = keyed{raw: q.Raw, exam: q.ExamName, subject: s.String(), hasSubj: s.Exists(), no: questionNo(q.Raw)}
	}
	sort.SliceStable(ks, func(i, j int) bool {
		if ks[i].subject != ks[j].subject {
			return ks[i].subject < ks[j].subject
		}
		return ks[i].no < ks[j].no
	})

	counters := map[string]int{}
	out := make([][]byte, len(ks))
	for i, k := range ks {
		group := k.subject
		if !k.hasSubj {
			group = "unknown"
		}
		raw, err := sjson.SetBytes(k.raw, "exam_name", k.exam)
		if err != nil {
			return nil, err
		}
		raw, err = sjson.SetBytes(raw, "subject_index", counters[group])
		if err != nil {
			return nil, err
		}
		counters[group]++
		out[i] = raw
	}
	return out, nil
}
