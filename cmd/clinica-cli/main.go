package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/clinica/clinica/internal/config"
	"github.com/clinica/clinica/internal/domain/appointment"
	authdomain "github.com/clinica/clinica/internal/domain/auth"
	"github.com/clinica/clinica/internal/domain/department"
	"github.com/clinica/clinica/internal/domain/doctor"
	"github.com/clinica/clinica/internal/domain/medication"
	"github.com/clinica/clinica/internal/domain/nurse"
	"github.com/clinica/clinica/internal/domain/patient"
	"github.com/clinica/clinica/internal/domain/treatment"
	"github.com/clinica/clinica/internal/platform/api"
	"github.com/clinica/clinica/internal/platform/cache"
	"github.com/clinica/clinica/internal/platform/notify"
	"github.com/clinica/clinica/internal/platform/session"
	"github.com/clinica/clinica/internal/resource"
)

// app holds the wired collaborators every command shares. It is built once
// in the root command's PersistentPreRunE, after flags are parsed.
type app struct {
	cfg    *config.Config
	log    zerolog.Logger
	sess   *session.Store
	api    *api.Client
	cache  *cache.Store
	notify *notify.Notifier

	auth         *authdomain.Service
	patients     *patient.Service
	doctors      *doctor.Service
	nurses       *nurse.Service
	departments  *department.Service
	appointments *appointment.Service
	treatments   *treatment.Service
	medications  *medication.Service
}

func main() {
	if err := newRootCmd(&app{}).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "clinica-cli",
		Short:         "Clinic administration console",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(); err != nil {
				return err
			}
			if requiresLogin(cmd) && !a.sess.Authenticated() {
				return fmt.Errorf("not logged in; run: clinica-cli login")
			}
			return nil
		},
	}

	rootCmd.AddCommand(loginCmd(a))
	rootCmd.AddCommand(logoutCmd(a))
	rootCmd.AddCommand(whoamiCmd(a))
	rootCmd.AddCommand(patientsCmd(a))
	rootCmd.AddCommand(doctorsCmd(a))
	rootCmd.AddCommand(nursesCmd(a))
	rootCmd.AddCommand(departmentsCmd(a))
	rootCmd.AddCommand(appointmentsCmd(a))
	rootCmd.AddCommand(treatmentsCmd(a))
	rootCmd.AddCommand(medicationsCmd(a))
	return rootCmd
}

// requiresLogin reports whether a command needs an authenticated session.
// Only login itself and the built-in help/completion commands are open.
func requiresLogin(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "login", "help", "completion", "__complete", "__completeNoDesc":
		return false
	}
	return true
}

func (a *app) setup() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	a.log = zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()
	if cfg.IsDev() {
		a.log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
	}

	a.sess, err = session.Open(cfg.SessionFile)
	if err != nil {
		return err
	}

	a.api, err = api.New(cfg.APIBaseURL, a.sess,
		api.WithLogger(a.log),
		api.WithHTTPClient(&http.Client{Timeout: time.Duration(cfg.HTTPTimeout) * time.Second}),
		api.WithUnauthorizedHandler(func() {
			fmt.Fprintln(os.Stderr, "session expired; run: clinica-cli login")
		}),
	)
	if err != nil {
		return err
	}

	a.cache = cache.New()
	a.notify = notify.New(a.log)
	a.notify.SetOutput(os.Stderr)

	deps := resource.Deps{API: a.api, Cache: a.cache, Notify: a.notify}
	a.auth = authdomain.NewService(a.api, a.sess, a.notify)
	a.patients = patient.NewService(deps)
	a.doctors = doctor.NewService(deps)
	a.nurses = nurse.NewService(deps)
	a.departments = department.NewService(deps)
	a.appointments = appointment.NewService(deps)
	a.treatments = treatment.NewService(deps)
	a.medications = medication.NewService(deps)
	return nil
}
