package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/f3rmion/kanaspell/internal/clipboard"
	"github.com/f3rmion/kanaspell/internal/config"
	"github.com/f3rmion/kanaspell/internal/reading"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags restores every flag in the tree to its default so each test
// starts from a clean command.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func execute(t *testing.T, dir, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(append([]string{"--config", dir}, args...))

	err := rootCmd.Execute()
	return out.String(), err
}

func TestSpell(t *testing.T) {
	out, err := execute(t, t.TempDir(), "", "spell", "--locale", "ja", "A漢")
	require.NoError(t, err)
	assert.Equal(t, "ハンカク ラテン オオモジ エー カンジノ カン\n", out)
}

func TestSpellStdinAttrOnly(t *testing.T) {
	out, err := execute(t, t.TempDir(), "あ\nア\n", "spell", "--locale", "ja", "--attr-only")
	require.NoError(t, err)
	assert.Equal(t, "ヒラガナ\nカタカナ\n", out)
}

func TestSpellUsesConfigLocale(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Locale = "en"
	require.NoError(t, config.Save(filepath.Join(dir, config.FileName), cfg))

	out, err := execute(t, dir, "", "spell", "A")
	require.NoError(t, err)
	assert.Equal(t, "half shaped latin cap A\n", out)

	out, err = execute(t, dir, "", "spell", "--locale", "ja", "--cap-announced", "A")
	require.NoError(t, err)
	assert.Equal(t, "ハンカク ラテン エー\n", out)
}

func TestSpellCopy(t *testing.T) {
	var copied string
	prev := copyWriter
	copyWriter = clipboard.WriterFunc(func(s string) error {
		copied = s
		return nil
	})
	t.Cleanup(func() { copyWriter = prev })

	_, err := execute(t, t.TempDir(), "", "spell", "--locale", "ja", "--copy", "漢", "字")
	require.NoError(t, err)
	assert.Equal(t, "カンジノ カン\nモジノ ジ", copied)
}

func TestDescribeJSON(t *testing.T) {
	out, err := execute(t, t.TempDir(), "", "describe", "--locale", "ja", "--json", "Aっ")
	require.NoError(t, err)

	var descs []reading.CharDescription
	require.NoError(t, json.Unmarshal([]byte(out), &descs))
	require.Len(t, descs, 2)
	assert.Equal(t, "u+0041", descs[0].Hex)
	assert.Equal(t, "ハンカク ラテン オオモジ", descs[0].Labels)
	assert.Equal(t, "チイサイ ツ", descs[1].Description)
}

func TestDescribeTable(t *testing.T) {
	out, err := execute(t, t.TempDir(), "", "describe", "--locale", "ja", "漢")
	require.NoError(t, err)
	assert.Contains(t, out, "u+6f22")
	assert.Contains(t, out, "カンジノ カン")
}

func TestHex(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, dir, "", "hex", "--locale", "ja", "u+3042")
	require.NoError(t, err)
	assert.Equal(t, "u+サンゼロヨンニー\n", out)

	out, err = execute(t, dir, "", "hex", "--locale", "en", "u+3042")
	require.NoError(t, err)
	assert.Equal(t, "u+3042\n", out)
}

func TestFixtext(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, dir, "", "fixtext", "--locale", "ja", "--candidate", "ひらがな")
	require.NoError(t, err)
	assert.Equal(t, "ヒラガナ\n", out)

	out, err = execute(t, dir, "", "fixtext", "--locale", "ja", "ァ")
	require.NoError(t, err)
	assert.Contains(t, out, "チイサイ ア")
}

func TestSpeak(t *testing.T) {
	script := "@char on\nあ\n@lang en\nhello\n"
	out, err := execute(t, t.TempDir(), script, "speak", "--locale", "ja")
	require.NoError(t, err)
	assert.Equal(t, "[ja] ヒラガナ あ\n[en] hello\n", out)
}

func TestSpeakScriptFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "script.txt")
	require.NoError(t, os.WriteFile(path, []byte("カナ\n"), 0644))

	out, err := execute(t, dir, "", "speak", "--locale", "ja", "--voice", "V1", path)
	require.NoError(t, err)
	assert.Equal(t, "[ja] カナ\n", out)

	_, err = execute(t, dir, "", "speak", "--voice", "nope", path)
	assert.ErrorContains(t, err, "unknown voice")

	_, err = execute(t, dir, "@bogus\n", "speak")
	assert.ErrorContains(t, err, "unknown directive")
}

func TestDictImportAndLookup(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "user.jsonl")
	require.NoError(t, os.WriteFile(src, []byte(`{"locale":"ja","character":"龍","long":["リュウ"]}`+"\n"), 0644))

	out, err := execute(t, dir, "", "dict", "import", src)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 1 entries")
	assert.FileExists(t, filepath.Join(dir, "descriptions.db"))

	cfg := config.Default()
	cfg.Dictionaries = []string{"descriptions.db"}
	require.NoError(t, config.Save(filepath.Join(dir, config.FileName), cfg))

	out, err = execute(t, dir, "", "dict", "lookup", "--locale", "ja", "龍")
	require.NoError(t, err)
	assert.Contains(t, out, "long:    リュウ")

	out, err = execute(t, dir, "", "spell", "--locale", "ja", "龍")
	require.NoError(t, err)
	assert.Equal(t, "リュウ\n", out)

	_, err = execute(t, dir, "", "dict", "import")
	assert.ErrorContains(t, err, "nothing to import")
}

func TestInit(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "conf")

	out, err := execute(t, dir, "", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Created")

	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	_, err = execute(t, dir, "", "init")
	assert.ErrorContains(t, err, "already exists")

	_, err = execute(t, dir, "", "init", "--force")
	assert.NoError(t, err)
}
