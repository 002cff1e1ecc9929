package parc

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestNewRegistry(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		reg, err := NewRegistry(RegistryOpts{})
		require.NoError(t, err)
		assert.Equal(t, []string{
			DigitListGrammarName,
			FieldTagGrammarName,
			HTTPRequestGrammarName,
			JSONGrammarName,
		}, reg.Names())
	})

	t.Run("ExcludeDefaults", func(t *testing.T) {
		reg, err := NewRegistry(RegistryOpts{
			ExcludeDefaults: true,
			Grammars:        map[string]Grammar{"ws": Erase(Whitespace)},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"ws"}, reg.Names())
	})

	t.Run("DuplicateOfDefault", func(t *testing.T) {
		_, err := NewRegistry(RegistryOpts{
			Grammars: map[string]Grammar{JSONGrammarName: Erase(Digit)},
		})
		assert.ErrorIs(t, err, ErrGrammarAlreadyRegistered)
	})
}

func TestRegistry_Register(t *testing.T) {
	reg, err := NewRegistry(RegistryOpts{ExcludeDefaults: true})
	require.NoError(t, err)

	require.NoError(t, reg.Register("digit", Erase(Digit)))
	assert.ErrorIs(t, reg.Register("digit", Erase(Digit)), ErrGrammarAlreadyRegistered)
	assert.ErrorIs(t, reg.Register("", Erase(Digit)), ErrEmptyGrammarName)

	g, err := reg.Lookup("digit")
	require.NoError(t, err)
	expectDone(t, g("12a"), "a", any("12"))

	_, err = reg.Lookup("nope")
	assert.ErrorIs(t, err, ErrGrammarNotFound)
}

func TestRegistry_Parse(t *testing.T) {
	reg := DefaultRegistry()

	v, err := reg.Parse(DigitListGrammarName, "1,2,3")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, v)

	v, err = reg.Parse(JSONGrammarName, `{"a": [1]}`)
	require.NoError(t, err)
	require.IsType(t, gjson.Result{}, v)
	assert.Equal(t, int64(1), v.(gjson.Result).Get("a.0").Int())

	v, err = reg.Parse(FieldTagGrammarName, "port,omitempty")
	require.NoError(t, err)
	assert.Equal(t, FieldTag{Binding: "port", Modifiers: []string{"omitempty"}}, v)

	v, err = reg.Parse(HTTPRequestGrammarName, "GET /x HTTP/1.1\r\n\r\n")
	require.NoError(t, err)
	assert.Equal(t, "/x", v.(HTTPRequest).Target)

	_, err = reg.Parse(DigitListGrammarName, "1,2,")
	assert.ErrorIs(t, err, ErrTrailingInput)

	_, err = reg.Parse(DigitListGrammarName, "x")
	assert.ErrorIs(t, err, ErrNoMatch)

	_, err = reg.Parse("missing", "x")
	assert.ErrorIs(t, err, ErrGrammarNotFound)
}

func TestRegistry_ParsePartial(t *testing.T) {
	v, rest, err := DefaultRegistry().ParsePartial(DigitListGrammarName, "1,2;tail")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, v)
	assert.Equal(t, ";tail", rest)

	_, rest, err = DefaultRegistry().ParsePartial(DigitListGrammarName, "tail")
	assert.ErrorIs(t, err, ErrNoMatch)
	assert.Equal(t, "tail", rest)
}

func TestRegistry_ConcurrentUse(t *testing.T) {
	reg, err := NewRegistry(RegistryOpts{})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := reg.Parse(JSONGrammarName, `[1, {"b": "c"}]`)
			assert.NoError(t, err)
			assert.Equal(t, "c", v.(gjson.Result).Get("1.b").String())
		}()
	}
	wg.Wait()
}
