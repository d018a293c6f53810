package exportcmd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexuscommand/nexusdeck/pkg/export"
	"github.com/nexuscommand/nexusdeck/pkg/transcript"
)

func TestNewExportCommand(t *testing.T) {
	cmd := NewExportCommand()

	require.NotNil(t, cmd)
	assert.Equal(t, "export", cmd.Use)
	assert.True(t, cmd.HasSubCommands())
	assert.Nil(t, cmd.Run)
	assert.NotNil(t, cmd.RunE)

	names := make(map[string]bool)
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}
	assert.True(t, names["list"], "expected list subcommand")
	assert.True(t, names["message"], "expected message subcommand")
	assert.True(t, names["formats"], "expected formats subcommand")
}

func TestNewMessageCommandFlags(t *testing.T) {
	cmd := newMessageCommand()

	require.NotNil(t, cmd)
	assert.True(t, cmd.HasFlags())

	for _, name := range []string{"file", "id", "format", "out", "confidential", "page-size"} {
		assert.NotNilf(t, cmd.Flags().Lookup(name), "expected %s flag", name)
	}

	formatFlag := cmd.Flags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "all", formatFlag.DefValue)
}

func exportTestTranscript() *transcript.Transcript {
	tr := transcript.New()
	ts := time.Date(2026, 8, 20, 14, 30, 0, 0, time.UTC)
	tr.Append(transcript.Message{ID: "aaaa1111-h", Role: transcript.RoleHuman, Content: "show overtime", Timestamp: ts})
	tr.Append(transcript.Message{ID: "aaaa2222-a", Role: transcript.RoleAI, Agent: "atlas", Content: "# Overtime\n\nAll green.", Timestamp: ts})
	tr.Append(transcript.Message{ID: "bbbb3333-a", Role: transcript.RoleAI, Agent: "maestro", Content: "Coverage holds.", Timestamp: ts})
	return tr
}

func TestFindMessageExactID(t *testing.T) {
	tr := exportTestTranscript()

	msg, err := findMessage(tr, "aaaa2222-a")
	require.NoError(t, err)
	assert.Equal(t, "atlas", msg.Agent)
}

func TestFindMessageUniquePrefix(t *testing.T) {
	tr := exportTestTranscript()

	msg, err := findMessage(tr, "bbbb")
	require.NoError(t, err)
	assert.Equal(t, "bbbb3333-a", msg.ID)
}

func TestFindMessageAmbiguousPrefix(t *testing.T) {
	tr := exportTestTranscript()

	_, err := findMessage(tr, "aaaa")
	require.Error(t, err)
	assert.ErrorContains(t, err, "matches 2 messages")
}

func TestFindMessageNotFound(t *testing.T) {
	tr := exportTestTranscript()

	_, err := findMessage(tr, "cccc")
	require.Error(t, err)
	assert.ErrorContains(t, err, "no message with ID")
}

func TestResolveFormatsAll(t *testing.T) {
	formats, err := resolveFormats("all")
	require.NoError(t, err)
	assert.Equal(t, export.Formats(), formats)
}

func TestResolveFormatsSingle(t *testing.T) {
	formats, err := resolveFormats("pdf")
	require.NoError(t, err)
	require.Len(t, formats, 1)
	assert.Equal(t, export.FormatPDF, formats[0])
}

func TestResolveFormatsUnknown(t *testing.T) {
	_, err := resolveFormats("docx")
	require.Error(t, err)
}

func TestPreviewFirstLineOnly(t *testing.T) {
	got := preview("# Heading\n\nBody text here", 48)
	assert.Equal(t, "# Heading", got)
}

func TestPreviewTruncatesRuneSafe(t *testing.T) {
	got := preview("αβγδεζηθικλμνξοπρστυ", 10)
	assert.Equal(t, "αβγδεζηθι…", got)
	assert.Len(t, []rune(got), 10)
}
