package commands

import (
	"io"
	"log"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/fhsmendes/cep-clima/config"
	"github.com/fhsmendes/cep-clima/utils"
	"github.com/fhsmendes/cep-clima/workflow"
)

var (
	envFile string
	verbose bool
)

// newRunner is replaced in tests.
var newRunner = func(cfg *config.Config) workflow.Runner {
	httpClient := &http.Client{Timeout: cfg.HTTPClientTimeout}
	return workflow.NewLookup(
		utils.NewViaCEPClient(cfg.ViaCEPBaseURL, httpClient),
		utils.NewWeatherAPIClient(cfg.WeatherAPIBaseURL, cfg.WeatherAPIKey, cfg.WeatherLang, httpClient),
	)
}

// startSession loads the configuration and builds the session a subcommand
// drives. Unless --verbose is set, the standard logger is silenced until the
// returned restore func runs.
func startSession(cmd *cobra.Command) (*workflow.Session, func(), error) {
	restore := func() {}
	if !verbose {
		previous := log.Writer()
		log.SetOutput(io.Discard)
		restore = func() { log.SetOutput(previous) }
	}

	var files []string
	if envFile != "" {
		files = append(files, envFile)
	}
	cfg := config.Load(files...)
	if err := cfg.Validate(); err != nil {
		cmd.PrintErrln("Erro:", err)
		return nil, restore, err
	}

	return workflow.NewSession(newRunner(cfg)), restore, nil
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "cepclima",
		Short:         "Address and current weather from a Brazilian postal code",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&envFile, "env-file", "", "dotenv file to load (default .env)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print workflow logs to stderr")

	root.AddCommand(lookupCmd(), shellCmd())
	return root
}

func Execute() error {
	return newRootCmd().Execute()
}
