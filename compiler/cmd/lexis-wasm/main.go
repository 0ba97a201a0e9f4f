//go:build js && wasm

// Command lexis-wasm exposes the analyzer to a browser page. The page calls
// lexisAnalyze(code) on every "analyze" click and renders the returned JSON
// (token table, grouped errors, counters) itself.
package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"syscall/js"
	"time"

	"github.com/lexiscope/lexiscope/compiler/internal/analysis"
	"github.com/lexiscope/lexiscope/compiler/internal/report"
	"github.com/lexiscope/lexiscope/compiler/internal/version"
)

type payload struct {
	Valid  bool             `json:"valid"`
	Stats  report.Stats     `json:"stats"`
	Result *analysis.Result `json:"result"`
	Export string           `json:"export"` // plain-text token listing for the download button
}

func analyze(code string) (string, error) {
	start := time.Now()
	res := analysis.Analyze(code, nil)
	st := report.Measure(code)
	st.Tokens = len(res.Tokens)
	st.Elapsed = time.Since(start)

	var listing strings.Builder
	report.WriteTokenListing(&listing, res.Tokens)

	out, err := json.Marshal(payload{Valid: res.Valid(), Stats: st, Result: res, Export: listing.String()})
	if err != nil {
		return "", fmt.Errorf("encode result: %w", err)
	}
	return string(out), nil
}

// lexisAnalyzeJS is the JavaScript-callable function.
func lexisAnalyzeJS(this js.Value, args []js.Value) (ret any) {
	defer func() {
		if r := recover(); r != nil {
			js.Global().Get("console").Call("error", "lexis: panic in analyzer:", fmt.Sprint(r))
			ret = map[string]any{"success": false, "error": fmt.Sprint(r)}
		}
	}()

	if len(args) < 1 || args[0].Type() != js.TypeString {
		return map[string]any{
			"success": false,
			"error":   "expected 1 argument (code string)",
		}
	}
	out, err := analyze(args[0].String())
	if err != nil {
		return map[string]any{"success": false, "error": err.Error()}
	}
	return map[string]any{"success": true, "output": out}
}

func main() {
	js.Global().Set("lexisAnalyze", js.FuncOf(lexisAnalyzeJS))
	js.Global().Set("lexisWasmVersion", version.Version)
	fmt.Println("lexis wasm analyzer ready")

	// keep the Go runtime alive for callbacks
	select {}
}
