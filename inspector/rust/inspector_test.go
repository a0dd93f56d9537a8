package rust

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/contractflow/inspector/graph"
	"golang.org/x/tools/txtar"
)

// extractArchive writes a txtar crate fixture into a temporary directory
func extractArchive(t *testing.T, name string) string {
	t.Helper()
	archive, err := txtar.ParseFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	root := t.TempDir()
	for _, file := range archive.Files {
		path := filepath.Join(root, filepath.FromSlash(file.Name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, file.Data, 0o644))
	}
	return root
}

// stripLocations clears positions so tests compare classification only
func stripLocations(functions []*graph.Function) []*graph.Function {
	for _, function := range functions {
		function.Location = nil
	}
	return functions
}

func TestInspector_InspectSource_Classification(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []*graph.Function
	}{
		{
			name: "exposed block",
			src: `
#[near_bindgen]
impl Contract {
    #[init]
    pub fn new() -> Self { Self {} }
    pub fn set(&mut self, v: u64) {}
    pub fn get(&self) -> u64 { 1 }
    pub fn consume(mut self) -> () {}
    #[payable]
    pub fn deposit(&mut self) {}
    #[private]
    fn callback(&mut self) -> bool { true }
}`,
			want: []*graph.Function{
				{Name: "new", Receiver: "Contract", IsPublic: true, IsInit: true},
				{Name: "set", Receiver: "Contract", IsPublic: true, IsMutable: true, IsProcess: true},
				{Name: "get", Receiver: "Contract", IsPublic: true, IsView: true},
				{Name: "consume", Receiver: "Contract", IsPublic: true, IsView: true, IsProcess: true},
				{Name: "deposit", Receiver: "Contract", IsPublic: true, IsPayable: true, IsMutable: true, IsProcess: true},
				{Name: "callback", Receiver: "Contract", IsMutable: true, IsPrivateCrossCall: true},
			},
		},
		{
			name: "scoped markers",
			src: `
#[near_sdk::near]
impl Contract {
    #[near_sdk::init(ignore_state)]
    pub fn migrate() -> Self { Self {} }
}`,
			want: []*graph.Function{
				{Name: "migrate", Receiver: "Contract", IsPublic: true, IsInit: true},
			},
		},
		{
			name: "trait impl inside exposed block",
			src: `
#[near_bindgen]
impl Ownable for Contract {
    fn owner(&self) -> String { String::new() }
}`,
			want: []*graph.Function{
				{Name: "owner", Receiver: "Contract", Trait: "Ownable", IsPublic: true, IsTraitImpl: true, IsView: true},
			},
		},
		{
			name: "out of scope impl and free function",
			src: `
impl Helper {
    pub fn run(&mut self) {}
}
pub fn util() {}
fn compute() -> u64 { 0 }`,
			want: []*graph.Function{
				{Name: "run", Receiver: "Helper", IsOutOfScope: true},
				{Name: "util", IsProcess: true, IsOutOfScope: true},
				{Name: "compute", IsOutOfScope: true},
			},
		},
		{
			name: "event type methods",
			src: `
impl NearEvent {
    pub fn emit(&self) {}
    pub(crate) fn json(&self) -> String { String::new() }
}`,
			want: []*graph.Function{
				{Name: "emit", Receiver: "NearEvent", IsPublic: true, IsView: true, IsProcess: true, IsEvent: true},
				{Name: "json", Receiver: "NearEvent", IsView: true, IsEvent: true},
			},
		},
		{
			name: "attributes reset after other items",
			src: `
#[near_bindgen]
pub struct Contract {}
impl Contract {
    pub fn hidden(&self) {}
}`,
			want: []*graph.Function{
				{Name: "hidden", Receiver: "Contract", IsOutOfScope: true},
			},
		},
		{
			name: "test module skipped",
			src: `
pub fn kept() {}
#[cfg(test)]
mod tests {
    #[test]
    fn check() {}
}`,
			want: []*graph.Function{
				{Name: "kept", IsProcess: true, IsOutOfScope: true},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file, err := NewInspector(nil).InspectSource([]byte(tt.src))
			require.NoError(t, err)
			assert.Equal(t, tt.want, stripLocations(file.Functions))
		})
	}
}

func TestInspector_InspectSource_Calls(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []string
	}{
		{name: "plain call", body: `run();`, want: []string{"run"}},
		{name: "method call", body: `self.store.save();`, want: []string{"save"}},
		{name: "scoped call", body: `a::b::Thing::create(1);`, want: []string{"create"}},
		{name: "turbofish", body: `parse::<u64>(x); x.cast::<u8>();`, want: []string{"parse", "cast"}},
		{name: "receiver chain then arguments", body: `a.b(c()).d(e());`, want: []string{"b", "c", "d", "e"}},
		{name: "macro contributes nothing", body: `println!("{}", hidden()); shown();`, want: []string{"shown"}},
		{name: "closure body", body: `items.iter().map(|x| transform(x));`, want: []string{"iter", "map", "transform"}},
		{
			name: "match with guard",
			body: `match compute() { Some(v) if check(v) => apply(v), _ => fallback() }`,
			want: []string{"compute", "check", "apply", "fallback"},
		},
		{
			name: "if let and else",
			body: `if let Some(x) = lookup() { used(x); } else if other() { alt(); } else { last(); }`,
			want: []string{"lookup", "used", "other", "alt", "last"},
		},
		{name: "let else", body: `let Some(x) = find() else { return fail(); };`, want: []string{"find", "fail"}},
		{name: "loops", body: `for i in range() { step(i); } while more() { tick(); } loop { spin(); }`, want: []string{"range", "step", "more", "tick", "spin"}},
		{name: "struct literal", body: `let p = Point { x: calc(), y, ..base() };`, want: []string{"calc", "base"}},
		{name: "nested items", body: `fn inner() { hidden(); } const LIMIT: u64 = limit(); inner();`, want: []string{"limit", "inner"}},
		{name: "operators", body: `let v = -first()? + (second() as u64) * arr[idx()]; total += third().await;`, want: []string{"first", "second", "idx", "third"}},
		{name: "blocks", body: `unsafe { raw(); } let f = async move { fetch().await };`, want: []string{"raw", "fetch"}},
		{name: "tuples and arrays", body: `let t = (one(), [two(), three()]); return finish(t);`, want: []string{"one", "two", "three", "finish"}},
		{name: "called expression", body: `(self.handler)(arg());`, want: []string{"arg"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := "fn subject() {\n" + tt.body + "\n}\n"
			file, err := NewInspector(nil).InspectSource([]byte(src))
			require.NoError(t, err)
			assert.Equal(t, tt.want, file.Calls("subject"))
		})
	}
}

func TestInspector_InspectSource_Idempotent(t *testing.T) {
	archive, err := txtar.ParseFile(filepath.Join("testdata", "counter.txtar"))
	require.NoError(t, err)
	var src []byte
	for _, file := range archive.Files {
		if file.Name == "src/lib.rs" {
			src = file.Data
		}
	}
	require.NotEmpty(t, src)
	inspector := NewInspector(nil)
	first, err := inspector.InspectSource(src)
	require.NoError(t, err)
	second, err := inspector.InspectSource(src)
	require.NoError(t, err)
	assert.Equal(t, first.Functions, second.Functions)
	assert.Equal(t, first.RawCalls, second.RawCalls)
	assert.Equal(t, first.Hash, second.Hash)
}

func TestInspector_InspectSource_ParseError(t *testing.T) {
	_, err := NewInspector(nil).InspectSource([]byte("fn broken( {"))
	require.Error(t, err)
	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, defaultFilename, parseErr.Path)
	assert.Equal(t, 1, parseErr.Line)
}

func TestInspector_InspectSource_FirstDeclarationOwnsCalls(t *testing.T) {
	src := `
fn dup() { first(); }
mod other {
    fn dup() { second(); }
}`
	file, err := NewInspector(nil).InspectSource([]byte(src))
	require.NoError(t, err)
	assert.Len(t, file.Functions, 2)
	assert.Equal(t, []string{"first"}, file.Calls("dup"))
}

func TestInspector_InspectProject(t *testing.T) {
	tests := []struct {
		name        string
		archive     string
		wantName    string
		wantVersion string
		wantEdition string
		wantFiles   []string
		wantCalls   map[string][]string
		wantNames   []string
	}{
		{
			name:        "counter",
			archive:     "counter.txtar",
			wantName:    "counter",
			wantVersion: "0.1.0",
			wantEdition: "2021",
			wantFiles:   []string{"src/lib.rs"},
			wantNames:   []string{"new", "add", "show_amount", "add_amount", "add_two"},
			wantCalls: map[string][]string{
				"new":         nil,
				"add":         {"add_two", "add_amount"},
				"show_amount": nil,
				"add_amount":  nil,
				"add_two":     nil,
			},
		},
		{
			name:        "events",
			archive:     "events.txtar",
			wantName:    "nft",
			wantVersion: "1.2.3",
			wantFiles: []string{
				"src/events.rs",
				"src/lib.rs",
				"src/some_fancy_impl/helpers.rs",
				"src/some_fancy_impl/trait_impl.rs",
			},
			wantNames: []string{"nft_mint", "log", "to_json", "mint", "on_minted", "normalize", "greet", "internal"},
			wantCalls: map[string][]string{
				"nft_mint":  {"Mint"},
				"log":       {"log_str", "to_json"},
				"to_json":   {"new"},
				"mint":      {"nft_mint", "clone", "log", "normalize"},
				"on_minted": nil,
				"normalize": {"to_lowercase"},
				"greet":     nil,
				"internal":  nil,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := extractArchive(t, tt.archive)
			config := graph.DefaultConfig()
			config.Workers = 2
			project, err := NewInspector(config).InspectProject(context.Background(), root)
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, project.Name)
			assert.Equal(t, tt.wantVersion, project.Version)
			assert.Equal(t, tt.wantEdition, project.Edition)

			var files []string
			for _, file := range project.Files {
				files = append(files, file.Path)
				assert.NotZero(t, file.Hash)
			}
			assert.Equal(t, tt.wantFiles, files)

			var names []string
			for _, function := range project.Functions() {
				names = append(names, function.Name)
				require.NotNil(t, function.Location)
				assert.Contains(t, tt.wantFiles, function.Location.Path)
			}
			assert.Equal(t, tt.wantNames, names)
			for name, want := range tt.wantCalls {
				assert.Equal(t, want, firstCalls(project, name), name)
			}
		})
	}
}

// firstCalls returns the raw calls of the first file declaring name
func firstCalls(project *graph.Project, name string) []string {
	for _, file := range project.Files {
		if file.HasFunction(name) {
			return file.Calls(name)
		}
	}
	return nil
}

func TestInspector_InspectFile_MissingFile(t *testing.T) {
	_, err := NewInspector(nil).InspectFile(context.Background(), filepath.Join(t.TempDir(), "absent.rs"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}
