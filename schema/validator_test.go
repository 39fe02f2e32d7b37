package schema_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michaelolof/fieldrules/schema"
	"github.com/michaelolof/fieldrules/validators"
)

func TestEvaluateRuleSet_Bypass(t *testing.T) {
	sets := map[string]schema.RuleSet{
		"list":  schema.List("email", "min:5"),
		"map":   schema.Map(schema.Entry{Key: "email"}, schema.Entry{Key: "min:", Options: schema.RuleOptions{Pattern: "5"}}),
		"empty": schema.List(),
	}

	for name, set := range sets {
		for _, val := range []string{"", "   ", "\t\n"} {
			t.Run(name, func(t *testing.T) {
				res, err := schema.EvaluateRuleSet(val, set)
				require.NoError(t, err)
				assert.Equal(t, schema.Result{Valid: true}, res)
			})
		}
	}

	t.Run("bypass skips unknown rules", func(t *testing.T) {
		res, err := schema.EvaluateRuleSet("", schema.List("nope"))
		require.NoError(t, err)
		assert.True(t, res.Valid)
	})
}

func TestEvaluateRuleSet_Required(t *testing.T) {
	sets := map[string]schema.RuleSet{
		"required first": schema.List("required", "min:5"),
		"required last":  schema.List("min:5", "email", "required"),
		"map form":       schema.Map(schema.Entry{Key: "min:", Options: schema.RuleOptions{Pattern: "5"}}, schema.Entry{Key: "required"}),
	}

	for name, set := range sets {
		t.Run(name, func(t *testing.T) {
			res, err := schema.EvaluateRuleSet("", set)
			require.NoError(t, err)
			assert.False(t, res.Valid)
			assert.Equal(t, "Field is required", res.Error)
		})
	}

	t.Run("custom required message", func(t *testing.T) {
		set := schema.Map(schema.Entry{Key: "required", Options: schema.RuleOptions{Message: "Tell us your name"}})
		res, err := schema.EvaluateRuleSet(" ", set)
		require.NoError(t, err)
		assert.Equal(t, schema.Result{Valid: false, Error: "Tell us your name"}, res)
	})

	t.Run("blank value still rejects misconfigured rules", func(t *testing.T) {
		tests := []struct {
			set    schema.RuleSet
			target error
		}{
			{schema.List("emial", "required"), validators.ErrUnknownRule},
			{schema.List("max:abc", "required"), validators.ErrInvalidParam},
			{schema.List("required", "emial"), validators.ErrUnknownRule},
		}
		for _, tt := range tests {
			res, err := schema.EvaluateRuleSet("", tt.set)
			require.ErrorIs(t, err, tt.target, tt.set.String())
			assert.True(t, schema.IsConfigError(err))
			assert.Equal(t, schema.Result{}, res)

			var report *schema.ErrReport
			require.ErrorAs(t, err, &report)
		}
	})

	t.Run("present value runs every rule", func(t *testing.T) {
		res, err := schema.EvaluateRuleSet("abc", schema.List("required", "min:5"))
		require.NoError(t, err)
		assert.Equal(t, "Field should be 5 or more characters", res.Error)
	})
}

func TestEvaluateRuleSet_FirstFailureWins(t *testing.T) {
	t.Run("contradictory rules report the first", func(t *testing.T) {
		res, err := schema.EvaluateRuleSet("ab", schema.List("min:5", "max:3"))
		require.NoError(t, err)
		assert.False(t, res.Valid)
		assert.Equal(t, "Field should be 5 or more characters", res.Error)
	})

	t.Run("rules after the first failure are not evaluated", func(t *testing.T) {
		res, err := schema.EvaluateRuleSet("ab", schema.List("min:5", "unknown-rule"))
		require.NoError(t, err)
		assert.False(t, res.Valid)
	})

	t.Run("all rules pass", func(t *testing.T) {
		res, err := schema.EvaluateRuleSet("Abcdef1!", schema.List("required", "min:8", "mixedCase", "has-int", "symbol"))
		require.NoError(t, err)
		assert.Equal(t, schema.Result{Valid: true}, res)
	})

	t.Run("passing rules before a failure", func(t *testing.T) {
		res, err := schema.EvaluateRuleSet("abcdef", schema.List("min:3", "upper", "has-int"))
		require.NoError(t, err)
		assert.Equal(t, "Field should contain at least one uppercase letter", res.Error)
	})
}

func TestEvaluateRuleSet_MapForm(t *testing.T) {
	t.Run("email round trip", func(t *testing.T) {
		res, err := schema.EvaluateRuleSet("test@example.com", schema.Map(schema.Entry{Key: "email"}))
		require.NoError(t, err)
		assert.Equal(t, schema.Result{Valid: true}, res)
	})

	t.Run("pattern supplies the parameter", func(t *testing.T) {
		res, err := schema.EvaluateRuleSet("abc", schema.Map(schema.Entry{Key: "min", Options: schema.RuleOptions{Pattern: "5"}}))
		require.NoError(t, err)
		assert.Equal(t, schema.Result{Valid: false, Error: "Field should be 5 or more characters"}, res)
	})

	t.Run("trailing colon key", func(t *testing.T) {
		res, err := schema.EvaluateRuleSet("abcdef", schema.Map(schema.Entry{Key: "max:", Options: schema.RuleOptions{Pattern: "3"}}))
		require.NoError(t, err)
		assert.Equal(t, "Field should be 3 or less characters", res.Error)
	})

	t.Run("cross field match", func(t *testing.T) {
		match := func(param string) schema.RuleSet {
			return schema.Map(schema.Entry{Key: "match", Options: schema.RuleOptions{Pattern: param}})
		}

		res, err := schema.EvaluateRuleSet("secret", match("Password|secret"))
		require.NoError(t, err)
		assert.True(t, res.Valid)

		res, err = schema.EvaluateRuleSet("secret", match("Password|other"))
		require.NoError(t, err)
		assert.False(t, res.Valid)
		assert.Contains(t, res.Error, "Password")
	})

	t.Run("custom message is not interpolated", func(t *testing.T) {
		set := schema.Map(schema.Entry{Key: "min", Options: schema.RuleOptions{Pattern: "5", Message: "Custom %s {min}"}})
		res, err := schema.EvaluateRuleSet("abc", set)
		require.NoError(t, err)
		assert.Equal(t, "Custom %s {min}", res.Error)
	})
}

func TestEvaluateRuleSet_ConfigErrors(t *testing.T) {
	tests := []struct {
		name   string
		set    schema.RuleSet
		target error
		pos    int
	}{
		{"unknown rule", schema.List("required", "emial"), validators.ErrUnknownRule, 1},
		{"non numeric max", schema.List("max:abc"), validators.ErrInvalidParam, 0},
		{"missing numeric param", schema.List("min"), validators.ErrInvalidParam, 0},
		{"non numeric pattern", schema.Map(schema.Entry{Key: "gt", Options: schema.RuleOptions{Pattern: "ten"}}), validators.ErrInvalidParam, 0},
		{"parameter given twice", schema.Map(schema.Entry{Key: "min:3", Options: schema.RuleOptions{Pattern: "5"}}), validators.ErrInvalidParam, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := schema.EvaluateRuleSet("value", tt.set)
			require.Error(t, err)
			assert.Equal(t, schema.Result{}, res)
			assert.ErrorIs(t, err, tt.target)
			assert.True(t, schema.IsConfigError(err))

			var report *schema.ErrReport
			require.ErrorAs(t, err, &report)
			assert.Equal(t, tt.pos, report.Position)
		})
	}

	for _, rule := range []string{"eq", "max", "min", "gt", "lt", "float"} {
		t.Run(rule+" with abc", func(t *testing.T) {
			_, err := schema.EvaluateRuleSet("value", schema.List(rule+":abc"))
			assert.ErrorIs(t, err, validators.ErrInvalidParam)
		})
	}
}

func TestEngine_Check(t *testing.T) {
	engine := schema.MustNew()

	require.NoError(t, engine.Check(schema.List("required", "min:8", "in:a,b")))

	// Unreachable on a blank value, still reported.
	err := engine.Check(schema.List("email", "emial"))
	require.ErrorIs(t, err, validators.ErrUnknownRule)

	var report *schema.ErrReport
	require.ErrorAs(t, err, &report)
	assert.Equal(t, 1, report.Position)
	assert.Equal(t, "emial", report.RuleName())

	res, err := engine.EvaluateRuleSet("", schema.List("email", "emial"))
	require.NoError(t, err)
	assert.True(t, res.Valid)
}

func TestEvaluateRule(t *testing.T) {
	t.Run("bare identifier", func(t *testing.T) {
		res, err := schema.EvaluateRule("email", "nope", nil)
		require.NoError(t, err)
		assert.Equal(t, schema.RuleResult{Valid: false, Message: "Field should be a valid email address"}, res)
	})

	t.Run("message is filled for passing rules", func(t *testing.T) {
		res, err := schema.EvaluateRule("min:2", "abc", nil)
		require.NoError(t, err)
		assert.True(t, res.Valid)
		assert.Equal(t, "Field should be 2 or more characters", res.Message)
	})

	t.Run("pattern option", func(t *testing.T) {
		res, err := schema.EvaluateRule("max", "abc", &schema.RuleOptions{Pattern: "2"})
		require.NoError(t, err)
		assert.False(t, res.Valid)
	})

	t.Run("custom message", func(t *testing.T) {
		res, err := schema.EvaluateRule("numeric", "12a", &schema.RuleOptions{Message: "Custom"})
		require.NoError(t, err)
		assert.Equal(t, "Custom", res.Message)
	})

	t.Run("unknown rule", func(t *testing.T) {
		_, err := schema.EvaluateRule("colour:red", "red", nil)
		assert.ErrorIs(t, err, validators.ErrUnknownRule)

		var report *schema.ErrReport
		require.ErrorAs(t, err, &report)
		assert.Equal(t, "colour", report.RuleName())
		assert.Equal(t, -1, report.Position)
		assert.True(t, strings.HasPrefix(report.Error(), "rule colour:red: "))
	})

	t.Run("missing predicate", func(t *testing.T) {
		reg := validators.NewRegistry(map[string]validators.Validator{"todo": {}})
		engine, err := schema.New(schema.WithRegistry(reg))
		require.NoError(t, err)

		_, err = engine.EvaluateRule("todo", "x", nil)
		assert.ErrorIs(t, err, validators.ErrMissingPredicate)
	})
}

func TestEngine_Options(t *testing.T) {
	even := validators.Validator{
		Message:  func(string) string { return "Field should have an even length" },
		Validate: func(val, _ string) bool { return len(val)%2 == 0 },
	}

	t.Run("custom validators", func(t *testing.T) {
		engine, err := schema.New(schema.WithValidators(map[string]validators.Validator{"even": even}))
		require.NoError(t, err)

		res, err := engine.EvaluateRuleSet("abc", schema.List("required", "even"))
		require.NoError(t, err)
		assert.Equal(t, "Field should have an even length", res.Error)
		assert.True(t, engine.Registry().Has("even"))
	})

	t.Run("clashing custom validator", func(t *testing.T) {
		_, err := schema.New(schema.WithValidators(map[string]validators.Validator{"min": even}))
		assert.ErrorIs(t, err, validators.ErrDuplicateRule)
		assert.Panics(t, func() {
			schema.MustNew(schema.WithValidators(map[string]validators.Validator{"min": even}))
		})
	})

	t.Run("logger traces evaluation", func(t *testing.T) {
		var buf bytes.Buffer
		engine, err := schema.New(schema.WithLogger(zerolog.New(&buf).Level(zerolog.DebugLevel)))
		require.NoError(t, err)

		_, err = engine.EvaluateRuleSet("abc", schema.List("min:2"))
		require.NoError(t, err)
		assert.Contains(t, buf.String(), `"rule":"min"`)
		assert.Contains(t, buf.String(), "rule evaluated")
	})
}

func TestEngine_Concurrent(t *testing.T) {
	engine := schema.MustNew()
	set := schema.List("required", "min:3", "max:10")

	done := make(chan schema.Result)
	for i := 0; i < 16; i++ {
		go func() {
			res, _ := engine.EvaluateRuleSet("abcd", set)
			done <- res
		}()
	}
	for i := 0; i < 16; i++ {
		assert.True(t, (<-done).Valid)
	}
}
