package render

import (
	"strings"

	"github.com/akinwale/sms-blast/util"
)

//NameFallback substitutes a missing contact name
const NameFallback = "Customer"

//Message substitutes the {{name}}, {{amount}} and {{phone}} placeholders in
//body with the recipient's values. A missing amount becomes an empty string,
//a missing name becomes NameFallback. Unrecognized placeholders pass through
//untouched.
func Message(body, name string, amount *float64, phone string) string {
	if util.IsBlank(name) {
		name = NameFallback
	}

	amountStr := ""
	if amount != nil {
		amountStr = util.FormatDecimal(*amount)
	}

	out := strings.ReplaceAll(body, "{{name}}", name)
	out = strings.ReplaceAll(out, "{{amount}}", amountStr)
	out = strings.ReplaceAll(out, "{{phone}}", phone)
	return out
}
