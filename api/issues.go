package api

import (
	"fmt"
	"strings"

	"github.com/lyraproj/issue/issue"
)

const (
	ConfigParseFailed           = `LOCATOR_CONFIG_PARSE_FAILED`
	MissingLocation             = `LOCATOR_MISSING_LOCATION`
	MissingProviderName         = `LOCATOR_MISSING_PROVIDER_NAME`
	NoProviders                 = `LOCATOR_NO_PROVIDERS`
	ProviderNameMultiplyDefined = `LOCATOR_PROVIDER_NAME_MULTIPLY_DEFINED`
	UnknownRendering            = `LOCATOR_UNKNOWN_RENDERING`
	UnsupportedConfigVersion    = `LOCATOR_UNSUPPORTED_CONFIG_VERSION`
)

func joinNames(v interface{}) string {
	if names, ok := v.([]string); ok {
		return strings.Join(names, `, `)
	}
	return fmt.Sprintf("%v", v)
}

func init() {
	issue.Hard(ConfigParseFailed, `Unable to parse configuration file '%{path}': %{detail}`)

	issue.Hard2(MissingLocation, `At least one of %{keys} must be given`, issue.HF{`keys`: joinNames})

	issue.Hard(MissingProviderName, `Provider at index %{index} in '%{path}' has no name`)

	issue.Hard(NoProviders, `Configuration file '%{path}' does not define any providers`)

	issue.Hard(ProviderNameMultiplyDefined, `Provider name '%{name}' defined more than once`)

	issue.Hard(UnknownRendering, `Unknown rendering '%{name}'`)

	issue.Hard(UnsupportedConfigVersion, `Unsupported configuration version %{version} in '%{path}'`)
}

// Error creates a Reported error for the given issue code and arguments
func Error(code issue.Code, args issue.H) issue.Reported {
	return issue.NewReported(code, issue.SeverityError, args, 1)
}
