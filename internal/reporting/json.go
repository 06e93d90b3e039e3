package reporting

import (
	"encoding/json"
	"io"

	"github.com/codewithboateng/dupcodes/internal/ir"
)

func WriteJSON(w io.Writer, rep *ir.Report) error {
	return encodeIndented(w, rep)
}

func encodeIndented(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
