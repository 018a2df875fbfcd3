// Command intercept-build turns a directory of execution traces left by
// the (out of scope) interception library into a compile_commands.json
// compilation database. It never spawns the build itself: it only
// enumerates, decodes, classifies, filters, and writes.
package main

import (
	"context"
	"flag"
	"os"
	"strings"

	"go.chromium.org/luci/common/errors"
	"go.chromium.org/luci/common/logging"
	"go.chromium.org/luci/common/logging/gologger"

	"github.com/rizsotto/Bear/database"
	"github.com/rizsotto/Bear/pipeline"
	"github.com/rizsotto/Bear/tool"
)

// stringList accumulates repeated occurrences of a flag, e.g.
// -use-cc=gcc -use-cc=clang.
type stringList []string

func (s *stringList) String() string {
	return strings.Join(*s, ",")
}

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

var (
	traceDirFlag    = flag.String("trace-dir", "", "Directory of execution.* trace files to process (default: $INTERCEPT_BUILD_TARGET_DIR).")
	cdbFlag         = flag.String("cdb", "compile_commands.json", "Path to the compilation database to write.")
	appendFlag      = flag.Bool("append", false, "Merge into, rather than overwrite, an existing database at -cdb.")
	fieldOutputFlag = flag.Bool("field-output", false, "Include the \"output\" field in emitted entries.")
	onlyUseFlag     = flag.Bool("use-only", false, "Disable pattern-based compiler recognition; only -use-cc/-use-cxx/-use-fortran basenames are accepted.")
	verboseFlag     = flag.Bool("verbose", false, "Enable debug logging.")

	useCCFlag      stringList
	useCXXFlag     stringList
	useFortranFlag stringList
	includeFlag    stringList
	excludeFlag    stringList
)

func init() {
	flag.Var(&useCCFlag, "use-cc", "Basename of a C compiler to recognize, in addition to the built-in patterns (repeatable).")
	flag.Var(&useCXXFlag, "use-cxx", "Basename of a C++ compiler to recognize, in addition to the built-in patterns (repeatable).")
	flag.Var(&useFortranFlag, "use-fortran", "Basename of a Fortran compiler to recognize, in addition to the built-in patterns (repeatable).")
	flag.Var(&includeFlag, "include", "Restrict the database to sources under this directory (repeatable).")
	flag.Var(&excludeFlag, "exclude", "Drop sources under this directory, even if included (repeatable).")
}

func main() {
	ctx := gologger.StdConfig.Use(context.Background())
	flag.Parse()

	if *verboseFlag {
		ctx = logging.SetLevel(ctx, logging.Debug)
	}

	traceDir := *traceDirFlag
	if traceDir == "" {
		traceDir = os.Getenv("INTERCEPT_BUILD_TARGET_DIR")
	}
	if traceDir == "" {
		logging.Errorf(ctx, "no trace directory given: pass -trace-dir or set INTERCEPT_BUILD_TARGET_DIR")
		os.Exit(64)
	}

	cfg := tool.Config{
		OnlyUse:          *onlyUseFlag,
		CCompilers:       useCCFlag,
		CXXCompilers:     useCXXFlag,
		FortranCompilers: useFortranFlag,
	}

	db, err := pipeline.Run(ctx, pipeline.Options{
		TraceDir: traceDir,
		Tools:    cfg,
		Include:  includeFlag,
		Exclude:  excludeFlag,
	})
	if err != nil {
		logging.Errorf(ctx, "%v", err)
		os.Exit(64)
	}

	if *appendFlag {
		if err := mergeExisting(ctx, db, cfg); err != nil {
			logging.Errorf(ctx, "%v", err)
			os.Exit(64)
		}
	}

	if err := database.Save(db.Entries(), *cdbFlag, *fieldOutputFlag); err != nil {
		logging.Errorf(ctx, "write compilation database: %v", err)
		os.Exit(64)
	}

	logging.Infof(ctx, "wrote %d entries to %s", db.Len(), *cdbFlag)
}

// mergeExisting loads the database already at -cdb, if any, and folds
// its entries into db ahead of the freshly captured ones.
func mergeExisting(ctx context.Context, db *database.Database, cfg tool.Config) error {
	if _, err := os.Stat(*cdbFlag); err != nil {
		return nil
	}

	prior, err := database.Load(*cdbFlag, cfg)
	if err != nil {
		return errors.Annotate(err, "load existing database %s", *cdbFlag).Err()
	}

	merged := database.New()
	merged.AddAll(prior)
	merged.AddAll(db.Entries())
	*db = *merged
	return nil
}
