package htmldoc

import (
	"regexp"

	"github.com/joshuahamrick/ncformatter/model"
)

var fieldPattern = regexp.MustCompile(`\{\[([^\[\]{}]+)\]\}`)

// Fields lists the {[NAME]} merge fields in s in order of first
// appearance, with the number of times each occurs.
func Fields(s string) []model.FieldCount {
	index := make(map[string]int)
	var fields []model.FieldCount

	for _, m := range fieldPattern.FindAllStringSubmatch(s, -1) {
		name := m[1]
		if i, ok := index[name]; ok {
			fields[i].Count++
			continue
		}
		index[name] = len(fields)
		fields = append(fields, model.FieldCount{Name: name, Count: 1})
	}
	return fields
}
