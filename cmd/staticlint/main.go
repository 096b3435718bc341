// Package main запускает multichecker проекта.
//
// Состав:
// - стандартные анализаторы go/analysis/passes
// - все SA-анализаторы staticcheck
// - S1000 и U1000 из staticcheck
// - публичный анализатор bodyclose
// - собственный анализатор noexit (запрещает os.Exit в main)
//
// Запуск:
//
//	go run ./cmd/staticlint ./...
package main

import (
	"strings"

	"github.com/timakin/bodyclose/passes/bodyclose"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/multichecker"
	"golang.org/x/tools/go/analysis/passes/nilness"
	"golang.org/x/tools/go/analysis/passes/printf"
	"golang.org/x/tools/go/analysis/passes/shadow"
	"golang.org/x/tools/go/analysis/passes/structtag"
	"honnef.co/go/tools/staticcheck"

	"github.com/SpencerMelo/showroom-backend-api/cmd/staticlint/noexit"
)

func main() {
	analyzers := []*analysis.Analyzer{
		shadow.Analyzer,
		structtag.Analyzer,
		nilness.Analyzer,
		printf.Analyzer,
	}

	// SA-анализаторы плюс пара точечных не-SA
	for _, a := range staticcheck.Analyzers {
		switch {
		case strings.HasPrefix(a.Analyzer.Name, "SA"),
			a.Analyzer.Name == "S1000",
			a.Analyzer.Name == "U1000":
			analyzers = append(analyzers, a.Analyzer)
		}
	}

	analyzers = append(analyzers, bodyclose.Analyzer)
	analyzers = append(analyzers, noexit.NewAnalyzer())

	multichecker.Main(analyzers...)
}
