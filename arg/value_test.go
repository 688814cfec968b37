package arg_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/deep-rent/argv/arg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValue(t *testing.T) {
	t.Run("unsupported type", func(t *testing.T) {
		assert.Panics(t, func() {
			arg.NewValue('l', "list", []string(nil), "")
		})
	})

	t.Run("unnamed", func(t *testing.T) {
		assert.Panics(t, func() {
			arg.NewValue(0, "", 0, "")
		})
	})

	t.Run("defaults", func(t *testing.T) {
		v := arg.NewValue('p', "port", 8080, "")
		assert.Equal(t, 8080, v.Value())
		assert.False(t, v.Parsed())
	})
}

func TestValue_Parse(t *testing.T) {
	t.Run("separate token", func(t *testing.T) {
		v := arg.NewValue('p', "port", 8080, "")
		n, err := v.Parse([]string{"--port", "9999"}, 0)
		require.NoError(t, err)
		assert.Equal(t, 2, n, "name and value tokens should be consumed")
		assert.Equal(t, 9999, v.Value())
		assert.True(t, v.Parsed())
	})

	t.Run("attached value", func(t *testing.T) {
		v := arg.NewValue('p', "port", 8080, "")
		n, err := v.Parse([]string{"--port=9999"}, 0)
		require.NoError(t, err)
		assert.Equal(t, 1, n, "only the name token should be consumed")
		assert.Equal(t, 9999, v.Value())
	})

	t.Run("short name", func(t *testing.T) {
		v := arg.NewValue('p', "port", 8080, "")
		n, err := v.Parse([]string{"-p", "9999"}, 0)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
		assert.Equal(t, 9999, v.Value())
	})

	t.Run("dashed value", func(t *testing.T) {
		v := arg.NewValue('i', "int", 0, "")
		n, err := v.Parse([]string{"--int", "-123"}, 0)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
		assert.Equal(t, -123, v.Value(), "value tokens are taken blindly")
	})

	t.Run("string value", func(t *testing.T) {
		v := arg.NewValue('h', "host", "localhost", "")
		_, err := v.Parse([]string{"--host", "remote"}, 0)
		require.NoError(t, err)
		assert.Equal(t, "remote", v.Value())
	})

	t.Run("duration value", func(t *testing.T) {
		v := arg.NewValue('t', "timeout", 5*time.Second, "")
		_, err := v.Parse([]string{"--timeout", "1h30m"}, 0)
		require.NoError(t, err)
		assert.Equal(t, 90*time.Minute, v.Value())
	})

	t.Run("last occurrence wins", func(t *testing.T) {
		v := arg.NewValue('p', "port", 8080, "")
		_, err := v.Parse([]string{"--port", "1111"}, 0)
		require.NoError(t, err)
		_, err = v.Parse([]string{"--port", "2222"}, 0)
		require.NoError(t, err)
		assert.Equal(t, 2222, v.Value())
	})

	t.Run("missing value", func(t *testing.T) {
		v := arg.NewValue('p', "port", 8080, "")
		n, err := v.Parse([]string{"--port"}, 0)
		require.Error(t, err)

		var verr arg.ValueError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "port", verr.Arg)
		assert.Empty(t, verr.Value)

		assert.Equal(t, 0, n)
		assert.Equal(t, 8080, v.Value(), "value should be unchanged")
		assert.False(t, v.Parsed())
	})

	t.Run("invalid value", func(t *testing.T) {
		v := arg.NewValue('p', "port", 8080, "")
		n, err := v.Parse([]string{"--port", "abc"}, 0)
		require.Error(t, err)

		var verr arg.ValueError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "port", verr.Arg)
		assert.Equal(t, "abc", verr.Value)
		assert.NotNil(t, errors.Unwrap(err))

		assert.Equal(t, 0, n)
		assert.Equal(t, 8080, v.Value(), "value should be unchanged")
		assert.False(t, v.Parsed())
	})

	t.Run("mismatch", func(t *testing.T) {
		v := arg.NewValue('p', "port", 8080, "")
		_, err := v.Parse([]string{"--host", "remote"}, 0)
		require.Error(t, err)
		assert.ErrorAs(t, err, &arg.MatchError{})
		assert.Equal(t, 8080, v.Value())
	})

	t.Run("certification", func(t *testing.T) {
		v := arg.NewValue('p', "port", 8080, "")
		v.Certify(func(p int) error {
			if p < 1024 {
				return fmt.Errorf("port %d is reserved", p)
			}
			return nil
		})

		_, err := v.Parse([]string{"--port", "80"}, 0)
		require.Error(t, err)
		assert.ErrorAs(t, err, &arg.ValueError{})
		assert.Equal(t, 8080, v.Value(), "rejected value should not stick")

		_, err = v.Parse([]string{"--port", "9999"}, 0)
		require.NoError(t, err)
		assert.Equal(t, 9999, v.Value())
	})

	t.Run("at most once", func(t *testing.T) {
		v := arg.NewValue('p', "port", 8080, "")
		v.Once()
		_, err := v.Parse([]string{"--port", "1111"}, 0)
		require.NoError(t, err)
		_, err = v.Parse([]string{"--port", "2222"}, 0)
		require.Error(t, err)
		assert.ErrorAs(t, err, &arg.RepeatError{})
		assert.Equal(t, 1111, v.Value())
	})
}

func TestValue_Init(t *testing.T) {
	v := arg.NewValue('p', "port", 8080, "")
	_, err := v.Parse([]string{"--port", "9999"}, 0)
	require.NoError(t, err)

	v.Init()
	assert.Equal(t, 8080, v.Value(), "default should be restored")
	assert.False(t, v.Parsed())
}

func TestValue_Update(t *testing.T) {
	type options struct {
		Port int
		Name string
	}

	t.Run("field binding", func(t *testing.T) {
		var opts options
		v := arg.NewValue('p', "port", 8080, "")
		v.Bind(arg.BindField(&opts, "Port"))
		_, err := v.Parse([]string{"--port", "9999"}, 0)
		require.NoError(t, err)
		require.NoError(t, v.Update())
		assert.Equal(t, 9999, opts.Port)
	})

	t.Run("setter binding", func(t *testing.T) {
		var got string
		v := arg.NewValue('n', "name", "", "")
		v.Bind(arg.BindTo(func(s string) { got = s }))
		_, err := v.Parse([]string{"--name", "foo"}, 0)
		require.NoError(t, err)
		require.NoError(t, v.Update())
		assert.Equal(t, "foo", got)
	})

	t.Run("type mismatch", func(t *testing.T) {
		var opts options
		v := arg.NewValue('p', "port", 8080, "")
		v.Bind(arg.BindField(&opts, "Name"))
		err := v.Update()
		require.Error(t, err)

		var berr arg.BindingError
		require.ErrorAs(t, err, &berr)
		assert.Equal(t, "port", berr.Arg)
		assert.Equal(t, "Name", berr.Field)
	})
}

func TestValue_SetDefault(t *testing.T) {
	t.Run("replaces default", func(t *testing.T) {
		v := arg.NewValue('p', "port", 8080, "")
		require.NoError(t, v.SetDefault("9090"))
		assert.Equal(t, 9090, v.Value())

		v.Init()
		assert.Equal(t, 9090, v.Value())
	})

	t.Run("keeps parsed value", func(t *testing.T) {
		v := arg.NewValue('p', "port", 8080, "")
		_, err := v.Parse([]string{"--port", "1111"}, 0)
		require.NoError(t, err)
		require.NoError(t, v.SetDefault("9090"))
		assert.Equal(t, 1111, v.Value())
	})

	t.Run("invalid text", func(t *testing.T) {
		v := arg.NewValue('p', "port", 8080, "")
		err := v.SetDefault("abc")
		require.Error(t, err)
		assert.ErrorAs(t, err, &arg.ValueError{})
		assert.Equal(t, 8080, v.Value())
	})
}

func TestValue_ValueString(t *testing.T) {
	type test struct {
		name string
		a    arg.Argument
		want string
	}

	tests := []test{
		{"int", arg.NewValue('p', "port", 8080, ""), "8080"},
		{"string", arg.NewValue('h', "host", "localhost", ""), "localhost"},
		{"float", arg.NewValue('r', "rate", 0.5, ""), "0.5"},
		{"bool true", arg.NewValue('f', "flag", true, ""), "1"},
		{"bool false", arg.NewValue('f', "flag", false, ""), "0"},
		{"duration", arg.NewValue('t', "timeout", 90*time.Second, ""), "1m30s"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.a.ValueString())
		})
	}
}

func TestValue_Describe(t *testing.T) {
	type test struct {
		name        string
		a           arg.Argument
		wantHint    string
		wantDefault string
	}

	tests := []test{
		{"int", arg.NewValue('p', "port", 8080, ""), "int", "8080"},
		{"zero default", arg.NewValue('p', "port", 0, ""), "int", ""},
		{"string", arg.NewValue('h', "host", "localhost", ""), "string", "localhost"},
		{"duration", arg.NewValue('t', "timeout", 5*time.Second, ""), "duration", "5s"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			info := tc.a.Describe()
			assert.Equal(t, tc.wantHint, info.Hint)
			assert.Equal(t, tc.wantDefault, info.Default)
		})
	}
}

func TestParseText(t *testing.T) {
	n, err := arg.ParseText[int]("42")
	require.NoError(t, err)
	assert.Equal(t, 42, n)

	d, err := arg.ParseText[time.Duration]("2h")
	require.NoError(t, err)
	assert.Equal(t, 2*time.Hour, d)

	_, err = arg.ParseText[int]("forty-two")
	assert.Error(t, err)
}
