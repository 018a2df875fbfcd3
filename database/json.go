package database

import (
	"encoding/json"
	"os"

	"go.chromium.org/luci/common/errors"

	"github.com/rizsotto/Bear/compilation"
	"github.com/rizsotto/Bear/shellsplit"
	"github.com/rizsotto/Bear/tool"
	"github.com/rizsotto/Bear/trace"
)

// rawEntry is the on-disk shape of one compile_commands.json object,
// accepting either the current "arguments" form or the legacy
// "command" string form.
type rawEntry struct {
	Directory string   `json:"directory"`
	File      string   `json:"file"`
	Arguments []string `json:"arguments"`
	Command   string   `json:"command"`
	Output    string   `json:"output"`
}

// Save writes comps to path as a compile_commands.json array: one
// object per entry, keys sorted alphabetically, 4-space indent.
// includeOutput controls whether the "output" key is emitted for
// entries that have one. Save builds the full byte slice before
// touching disk, so an encoding error leaves path untouched. The write
// itself is not atomic: an I/O error during it can leave a partially
// written file at path.
func Save(comps []compilation.Compilation, path string, includeOutput bool) error {
	out := make([]map[string]interface{}, 0, len(comps))
	for _, c := range comps {
		out = append(out, toEntryMap(c, includeOutput))
	}
	data, err := json.MarshalIndent(out, "", "    ")
	if err != nil {
		return errors.Annotate(err, "encode compilation database").Err()
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Annotate(err, "write %s", path).Err()
	}
	return nil
}

// toEntryMap uses a plain map[string]interface{} (rather than a
// tagged struct) specifically because encoding/json sorts map keys
// alphabetically when marshaling, which is how §6's "keys are sorted"
// requirement is met without a bespoke ordering pass.
func toEntryMap(c compilation.Compilation, includeOutput bool) map[string]interface{} {
	m := map[string]interface{}{
		"directory": c.Directory,
		"file":      c.RelativeSource(),
		"arguments": c.Arguments(),
	}
	if includeOutput && c.Output != nil {
		m["output"] = *c.Output
	}
	return m
}

// Load reads a compile_commands.json file at path and re-derives its
// Compilations by feeding each entry's reconstructed Execution back
// through compilation.Split — the same splitter used for live capture.
// An entry with neither "arguments" nor "command" is malformed and
// fails the whole load, per the "fatal on malformed input DB" policy.
func Load(path string, cfg tool.Config) ([]compilation.Compilation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Annotate(err, "read %s", path).Err()
	}

	var raw []rawEntry
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Annotate(err, "parse %s", path).Err()
	}

	var comps []compilation.Compilation
	for i, entry := range raw {
		argv, err := entryArgv(entry)
		if err != nil {
			return nil, errors.Annotate(err, "%s: entry %d", path, i).Err()
		}
		exec := trace.Execution{Cwd: entry.Directory, Argv: argv}
		comps = append(comps, compilation.Split(exec, cfg)...)
	}
	return comps, nil
}

func entryArgv(entry rawEntry) ([]string, error) {
	if len(entry.Arguments) > 0 {
		return entry.Arguments, nil
	}
	if entry.Command != "" {
		return shellsplit.Split(entry.Command)
	}
	return nil, errors.Reason("entry has neither \"arguments\" nor \"command\"").Err()
}
