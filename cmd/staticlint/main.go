// Command staticlint runs the vet passes, the selected
// staticcheck checks and the repository's own analyzers.
package main

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/breml/bidichk/pkg/bidichk"
	"github.com/dmitrovia/keypair-tool/internal/analaysers/mainosexit"
	"github.com/sivchari/containedctx"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/multichecker"
	"golang.org/x/tools/go/analysis/passes/appends"
	"golang.org/x/tools/go/analysis/passes/assign"
	"golang.org/x/tools/go/analysis/passes/atomic"
	"golang.org/x/tools/go/analysis/passes/bools"
	"golang.org/x/tools/go/analysis/passes/buildtag"
	"golang.org/x/tools/go/analysis/passes/composite"
	"golang.org/x/tools/go/analysis/passes/copylock"
	"golang.org/x/tools/go/analysis/passes/deepequalerrors"
	"golang.org/x/tools/go/analysis/passes/defers"
	"golang.org/x/tools/go/analysis/passes/directive"
	"golang.org/x/tools/go/analysis/passes/errorsas"
	"golang.org/x/tools/go/analysis/passes/ifaceassert"
	"golang.org/x/tools/go/analysis/passes/loopclosure"
	"golang.org/x/tools/go/analysis/passes/lostcancel"
	"golang.org/x/tools/go/analysis/passes/nilfunc"
	"golang.org/x/tools/go/analysis/passes/nilness"
	"golang.org/x/tools/go/analysis/passes/printf"
	"golang.org/x/tools/go/analysis/passes/shadow"
	"golang.org/x/tools/go/analysis/passes/shift"
	"golang.org/x/tools/go/analysis/passes/sortslice"
	"golang.org/x/tools/go/analysis/passes/stdmethods"
	"golang.org/x/tools/go/analysis/passes/stdversion"
	"golang.org/x/tools/go/analysis/passes/stringintconv"
	"golang.org/x/tools/go/analysis/passes/structtag"
	"golang.org/x/tools/go/analysis/passes/testinggoroutine"
	"golang.org/x/tools/go/analysis/passes/tests"
	"golang.org/x/tools/go/analysis/passes/unmarshal"
	"golang.org/x/tools/go/analysis/passes/unreachable"
	"golang.org/x/tools/go/analysis/passes/unusedresult"
	"golang.org/x/tools/go/analysis/passes/unusedwrite"
	"honnef.co/go/tools/analysis/lint"
	"honnef.co/go/tools/simple"
	"honnef.co/go/tools/staticcheck"
)

// configEnv - path of a config replacing the embedded one.
const configEnv = "STATICLINT_CONFIG"

//go:embed config.json
var defaultConfig []byte

// ConfigData describes the structure
// of the configuration file. A name ending
// in "*" selects every check with that prefix.
type ConfigData struct {
	Staticcheck []string `json:"staticcheck"`
	Simple      []string `json:"simple"`
}

func main() {
	cfg, err := getCfg()
	if err != nil {
		fmt.Println(err)

		return
	}

	multichecker.Main(
		getAnalaysers(cfg)...,
	)
}

// getCfg - get CFG.
func getCfg() (*ConfigData, error) {
	data := defaultConfig

	if pth := os.Getenv(configEnv); pth != "" {
		var err error

		data, err = os.ReadFile(pth)
		if err != nil {
			return nil, fmt.Errorf("getCfg->ReadFile: %w", err)
		}
	}

	var cfg ConfigData

	err := json.Unmarshal(data, &cfg)
	if err != nil {
		return nil, fmt.Errorf("getCfg->Unmarshal: %w", err)
	}

	return &cfg, nil
}

// getAnalaysers - get analaysers.
func getAnalaysers(cfg *ConfigData) []*analysis.Analyzer {
	checks := []*analysis.Analyzer{
		appends.Analyzer, assign.Analyzer,
		atomic.Analyzer, bools.Analyzer,
		buildtag.Analyzer, composite.Analyzer,
		copylock.Analyzer, deepequalerrors.Analyzer,
		defers.Analyzer, directive.Analyzer,
		errorsas.Analyzer, ifaceassert.Analyzer,
		loopclosure.Analyzer, lostcancel.Analyzer,
		nilfunc.Analyzer, nilness.Analyzer,
		printf.Analyzer, shadow.Analyzer,
		shift.Analyzer, sortslice.Analyzer,
		stdmethods.Analyzer, stdversion.Analyzer,
		stringintconv.Analyzer, structtag.Analyzer,
		testinggoroutine.Analyzer, tests.Analyzer,
		unmarshal.Analyzer, unreachable.Analyzer,
		unusedresult.Analyzer, unusedwrite.Analyzer,
		containedctx.Analyzer,
		bidichk.NewAnalyzer(),
		mainosexit.NewCheckAnalayser(),
	}

	checks = append(checks, selectChecks(staticcheck.Analyzers,
		cfg.Staticcheck)...)
	checks = append(checks, selectChecks(simple.Analyzers,
		cfg.Simple)...)

	return checks
}

func selectChecks(
	all []*lint.Analyzer,
	names []string,
) []*analysis.Analyzer {
	res := make([]*analysis.Analyzer, 0, len(names))

	for _, v := range all {
		if selected(v.Analyzer.Name, names) {
			res = append(res, v.Analyzer)
		}
	}

	return res
}

func selected(name string, names []string) bool {
	for _, want := range names {
		prefix, isWildcard := strings.CutSuffix(want, "*")
		if isWildcard && strings.HasPrefix(name, prefix) {
			return true
		}

		if want == name {
			return true
		}
	}

	return false
}
