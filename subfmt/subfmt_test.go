package subfmt

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rivethealth/prettier/doc"
	"github.com/rivethealth/prettier/printer"
)

func render(t *testing.T, d doc.Doc) string {
	t.Helper()
	return doc.Print(d, doc.Options{})
}

func TestYaml(t *testing.T) {
	d, err := Yaml("title: Demo\ndraft: true")
	require.NoError(t, err)
	require.Equal(t, "title: Demo\ndraft: true", render(t, d))
}

func TestYamlKeepsKeyOrder(t *testing.T) {
	d, err := Yaml("b: 2\na: 1")
	require.NoError(t, err)
	require.Equal(t, "b: 2\na: 1", render(t, d))
}

func TestYamlInvalid(t *testing.T) {
	_, err := Yaml("a: [unclosed")
	require.Error(t, err)
}

func TestCSS(t *testing.T) {
	d, err := CSS("a { color: red; }")
	require.NoError(t, err)
	require.Equal(t, "a {\n  color: red;\n}", render(t, d))
}

func TestCSSMultipleSelectors(t *testing.T) {
	d, err := CSS("a,b { color: red; text-align: center; }")
	require.NoError(t, err)
	require.Equal(t, "a, b {\n  color: red;\n  text-align: center;\n}", render(t, d))
}

func TestCSSAtRule(t *testing.T) {
	d, err := CSS(`@media screen { a { color: red; } }`)
	require.NoError(t, err)
	require.Equal(t, "@media screen {\n  a {\n    color: red;\n  }\n}", render(t, d))
}

func TestExpression(t *testing.T) {
	d, err := Expression("a  &&\n  b")
	require.NoError(t, err)
	require.Equal(t, "a && b", render(t, doc.Flatten(d)))
}

func TestEmbedDispatch(t *testing.T) {
	embed := Embed()

	d, err := embed("a: 1", "yaml", printer.Options{})
	require.NoError(t, err)
	require.Equal(t, "a: 1", render(t, d))

	_, err = embed("puts 1", "ruby", printer.Options{})
	require.Error(t, err, "unknown languages are rejected so the caller preserves the source")
}
