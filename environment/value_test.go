package environment

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func retryCount(env Environment) (int, error) {
	return ValueFor[int](env).
		ForDevelopmentOrBuild(0).
		ForAcceptance(1).
		Value()
}

func TestValue_ResolvesForMatchingEnvironment(t *testing.T) {
	v, err := retryCount(Build)
	require.NoError(t, err)
	assert.Equal(t, 0, v)

	v, err = retryCount(Acceptance)
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}

func TestValue_NoMatchReportsMemberAndEnvironment(t *testing.T) {
	_, err := retryCount(Production)
	require.Error(t, err)

	var nse *NotSupportedError
	require.True(t, errors.As(err, &nse))
	assert.Equal(t, "retryCount", nse.Member)
	assert.Equal(t, Production, nse.Environment)
	assert.Contains(t, err.Error(), "retryCount")
	assert.Contains(t, err.Error(), "PRD")
	assert.Contains(t, err.Error(), "does not have a defined value")
}

func TestValue_LastWriterWins(t *testing.T) {
	v, err := ValueFor[string](Acceptance).
		ForAcceptanceUpwards("upwards").
		ForAcceptance("exact").
		Value()
	require.NoError(t, err)
	assert.Equal(t, "exact", v)

	v, err = ValueFor[string](Acceptance).
		ForAcceptance("exact").
		ForAcceptanceUpwards("upwards").
		Value()
	require.NoError(t, err)
	assert.Equal(t, "upwards", v)
}

func TestValue_PreProductionUpwards(t *testing.T) {
	tests := []struct {
		env  Environment
		want bool
	}{
		{Development, false},
		{Build, false},
		{Integration, false},
		{Acceptance, false},
		{PreProduction, true},
		{Production, true},
	}

	for _, tt := range tests {
		t.Run(tt.env.String(), func(t *testing.T) {
			v := ValueFor[string](tt.env).ForPreProductionUpwards("X")
			assert.Equal(t, tt.want, v.HasValue())

			if tt.want {
				got, err := v.Value()
				require.NoError(t, err)
				assert.Equal(t, "X", got)
			}
		})
	}
}

func TestValue_UpwardsMonotonicity(t *testing.T) {
	upwards := map[string]func(*Value[int], int) *Value[int]{
		"integration":   (*Value[int]).ForIntegrationUpwards,
		"acceptance":    (*Value[int]).ForAcceptanceUpwards,
		"preproduction": (*Value[int]).ForPreProductionUpwards,
	}

	for name, set := range upwards {
		t.Run(name, func(t *testing.T) {
			matched := false
			for _, env := range All() {
				has := set(ValueFor[int](env), 1).HasValue()
				if matched {
					assert.True(t, has, "environment %s above a matching one must match", env)
				}

				matched = matched || has
			}

			assert.True(t, matched)
		})
	}
}

func TestValue_UnknownEnvironmentMatchesExactOnly(t *testing.T) {
	env := Environment("TST")

	assert.False(t, ValueFor[int](env).ForIntegrationUpwards(1).HasValue())
	assert.True(t, ValueFor[int](env).ForEnvironment("TST", 1).HasValue())
}

func TestValue_NamedOverridesMember(t *testing.T) {
	_, err := ValueFor[int](Development).Named("Timeout").ForProduction(3).Value()

	var nse *NotSupportedError
	require.ErrorAs(t, err, &nse)
	assert.Equal(t, "Timeout", nse.Member)
}

func TestValue_MustValuePanics(t *testing.T) {
	assert.Panics(t, func() {
		ValueFor[int](Development).ForProduction(1).MustValue()
	})
	assert.Equal(t, 2, ValueFor[int](Development).ForDevelopment(2).MustValue())
}

func TestValue_MemberFromClosure(t *testing.T) {
	resolve := func() error {
		_, err := ValueFor[int](Development).Value()
		return err
	}

	var nse *NotSupportedError
	require.ErrorAs(t, resolve(), &nse)
	assert.Equal(t, "TestValue_MemberFromClosure", nse.Member)
}

func TestMemberName(t *testing.T) {
	tests := map[string]string{
		"binding-generator/examples/sample.(*Platform).ReceiveHost":       "ReceiveHost",
		"binding-generator/examples/sample.Platform.ReceiveHost.func1":    "ReceiveHost",
		"binding-generator/environment.TestValue_MemberFromClosure.func1": "TestValue_MemberFromClosure",
		"main.main": "main",

		"example.com/app/settings.funding":               "funding",
		"example.com/app/settings.funding.func1":         "funding",
		"example.com/app/settings.(*Platform).gowrapper": "gowrapper",
		"example.com/app/settings.Platform.Host.func2.1": "Host",
		"example.com/app/settings.Platform.Host.gowrap3": "Host",
	}

	for in, want := range tests {
		assert.Equal(t, want, memberName(in), in)
	}
}
