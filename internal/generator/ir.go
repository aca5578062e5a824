package generator

import "log/slog"

// This file houses the intermediate representation handed to the templates
// (model -> classification -> IR -> render).

// arm kinds for template-driven code emission; each has an "arm_<kind>"
// template.
const (
	armKindTime           = "time"
	armKindTimeNullable   = "timeNullable"
	armKindNumber         = "number"
	armKindNumberNullable = "numberNullable"
	armKindString         = "string"
	armKindStringNullable = "stringNullable"
	armKindFalse          = "false"
	armKindPanic          = "panic"
)

// Config holds generation settings for propsetgen.
type Config struct {
	Dir        string   // package directory to scan, and where files are written
	ModelFile  string   // optional YAML model; replaces source scanning when set
	Containers []string // optional: only these containers (empty = all)
	Output     string   // output filename override, single container only
	Debug      bool     // annotate every arm with its parsing strategy
	DryRun     bool     // emit but do not write files
	Command    string   // canonical invocation, recorded in the header
	Version    string   // propsetgen build version
	Logger     *slog.Logger
}

// EmitOptions tune a single Emit call.
type EmitOptions struct {
	Debug   bool
	Command string
	Version string
}

// fileModel is the root template model for a generated file.
type fileModel struct {
	Package    string
	StdImports []importModel
	Imports    []importModel
	Methods    []methodModel
	Command    string
	Version    string
}

// importModel is one import line; Name is empty unless an alias is needed.
type importModel struct {
	Name string
	Path string
}

// methodModel is one SetProperty<Record> dispatch method.
type methodModel struct {
	Name     string
	Receiver string
	Record   string // record type as written in the file
	Arms     []armNode
}

// armNode is one case of the dispatch switch.
type armNode struct {
	Kind     string
	Property string
	Elem     string // element type as written in the file
	Type     string // declared type display name, for panics
	Strategy string
	Debug    bool
}
