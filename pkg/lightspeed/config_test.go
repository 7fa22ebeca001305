package lightspeed_test

import (
	"fmt"
	"testing"

	"github.com/fivetwenty-io/lightspeed/pkg/lightspeed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	allClusters  = []lightspeed.Cluster{lightspeed.ClusterEU1, lightspeed.ClusterUS1}
	allLanguages = []lightspeed.Language{lightspeed.LanguageNL, lightspeed.LanguageEN}
)

func TestCluster(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "https://api.webshopapp.com/", lightspeed.ClusterEU1.BaseURL())
	assert.Equal(t, "https://api.shoplightspeed.com/", lightspeed.ClusterUS1.BaseURL())
	assert.Equal(t, "eu1", lightspeed.ClusterEU1.String())
	assert.Equal(t, "us1", lightspeed.ClusterUS1.String())
	assert.Empty(t, lightspeed.Cluster(42).BaseURL())
	assert.Equal(t, "Cluster(42)", lightspeed.Cluster(42).String())
}

func TestLanguage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "nl", lightspeed.LanguageNL.Code())
	assert.Equal(t, "en", lightspeed.LanguageEN.Code())
	assert.Equal(t, "en", lightspeed.LanguageEN.String())
	assert.Empty(t, lightspeed.Language(7).Code())
	assert.Equal(t, "Language(7)", lightspeed.Language(7).String())
}

func TestParseCluster(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected lightspeed.Cluster
		wantErr  bool
	}{
		{input: "eu1", expected: lightspeed.ClusterEU1},
		{input: "EU1", expected: lightspeed.ClusterEU1},
		{input: " us1 ", expected: lightspeed.ClusterUS1},
		{input: "ap1", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			cluster, err := lightspeed.ParseCluster(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, lightspeed.ErrUnknownCluster)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, cluster)
		})
	}
}

func TestParseLanguage(t *testing.T) {
	t.Parallel()

	language, err := lightspeed.ParseLanguage("NL")
	require.NoError(t, err)
	assert.Equal(t, lightspeed.LanguageNL, language)

	language, err = lightspeed.ParseLanguage("en")
	require.NoError(t, err)
	assert.Equal(t, lightspeed.LanguageEN, language)

	_, err = lightspeed.ParseLanguage("de")
	require.ErrorIs(t, err, lightspeed.ErrUnknownLanguage)
}

func TestAPIConfig_ResolveURL(t *testing.T) {
	t.Parallel()

	t.Run("eu1 en with leading slash", func(t *testing.T) {
		t.Parallel()

		config := lightspeed.NewAPIConfig("foo", "bar", lightspeed.ClusterEU1, lightspeed.LanguageEN)
		assert.Equal(t, "https://api.webshopapp.com/en/account.json", config.ResolveURL("/account.json"))
	})

	t.Run("us1 en with and without leading slash", func(t *testing.T) {
		t.Parallel()

		config := lightspeed.NewAPIConfig("foo", "bar", lightspeed.ClusterUS1, lightspeed.LanguageEN)
		assert.Equal(t, "https://api.shoplightspeed.com/en/account.json", config.ResolveURL("account.json"))
		assert.Equal(t, "https://api.shoplightspeed.com/en/account.json", config.ResolveURL("/account.json"))
	})

	t.Run("empty path yields base for every cluster and language", func(t *testing.T) {
		t.Parallel()

		for _, cluster := range allClusters {
			for _, language := range allLanguages {
				config := lightspeed.NewAPIConfig("foo", "bar", cluster, language)
				expected := cluster.BaseURL() + language.Code() + "/"

				assert.Equal(t, expected, config.ResolveURL(""), "%s/%s", cluster, language)
				assert.Equal(t, expected, config.String())
				assert.NotContains(t, config.ResolveURL("")[len("https://"):], "//")
			}
		}
	})

	t.Run("leading slash is normalized", func(t *testing.T) {
		t.Parallel()

		paths := []string{"account.json", "/account.json", "account/metafields.json", "/account/ratelimit.json", "", "/"}

		for _, cluster := range allClusters {
			for _, language := range allLanguages {
				config := lightspeed.NewAPIConfig("foo", "bar", cluster, language)

				for _, path := range paths {
					stripped := path
					if len(stripped) > 0 && stripped[0] == '/' {
						stripped = stripped[1:]
					}

					name := fmt.Sprintf("%s/%s %q", cluster, language, path)
					assert.Equal(t, config.ResolveURL("/"+stripped), config.ResolveURL(path), name)
					assert.Equal(t, config.String()+stripped, config.ResolveURL(path), name)
				}
			}
		}
	})
}

func TestAPIConfig_Accessors(t *testing.T) {
	t.Parallel()

	config := lightspeed.NewAPIConfig("foo", "bar", lightspeed.ClusterUS1, lightspeed.LanguageNL)

	assert.Equal(t, "https://api.shoplightspeed.com/", config.ClusterURL())
	assert.Equal(t, "nl", config.LanguageSegment())
	assert.Equal(t, "foo", config.APIKey())
	assert.Equal(t, lightspeed.ClusterUS1, config.Cluster())
	assert.Equal(t, lightspeed.LanguageNL, config.Language())

	secret, ok := config.APISecret()
	assert.True(t, ok)
	assert.Equal(t, "bar", secret)

	empty := lightspeed.NewAPIConfig("foo", "", lightspeed.ClusterUS1, lightspeed.LanguageNL)
	secret, ok = empty.APISecret()
	assert.True(t, ok, "an empty secret is still present")
	assert.Empty(t, secret)
}
