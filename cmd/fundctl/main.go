package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"near-crowdfund/internal/adapter/nearrpc"
	"near-crowdfund/internal/adapter/pinata"
	"near-crowdfund/internal/adapter/usecase"
	"near-crowdfund/internal/config"
	"near-crowdfund/internal/core/port"
)

// fundctl drives the same campaign use case as the HTTP gateway from the
// command line, against the same environment configuration. It exists for
// operators: inspecting the contract state and exercising the write paths
// without a browser.

var (
	imagePath   string
	title       string
	description string
	target      string
	deadline    string
)

func newUseCase() (*usecase.CampaignUseCase, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	logger := cfg.Log.New(os.Stderr)
	return usecase.NewCampaignUseCase(nearrpc.NewSession(cfg.Ledger), pinata.NewPinner(cfg.Pinner), logger, loc), nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

var rootCmd = &cobra.Command{
	Use:   "fundctl",
	Short: "Operate the crowdfunding contract from the command line",
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all campaigns with derived status",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newUseCase()
		if err != nil {
			return err
		}
		views, err := svc.ListCampaigns(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(views)
	},
}

var donationsCmd = &cobra.Command{
	Use:   "donations <campaign-id>",
	Short: "List the donors of one campaign",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var id uint64
		if _, err := fmt.Sscanf(args[0], "%d", &id); err != nil {
			return fmt.Errorf("invalid campaign id %q", args[0])
		}
		svc, err := newUseCase()
		if err != nil {
			return err
		}
		donations, err := svc.ListDonations(cmd.Context(), id)
		if err != nil {
			return err
		}
		return printJSON(donations)
	},
}

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a campaign (pins the image, then submits the transaction)",
	RunE: func(cmd *cobra.Command, args []string) error {
		image, err := os.ReadFile(imagePath)
		if err != nil {
			return fmt.Errorf("read image: %w", err)
		}
		svc, err := newUseCase()
		if err != nil {
			return err
		}
		req := port.CreateCampaignReq{
			Image:       image,
			ImageName:   imagePath,
			Title:       title,
			Description: description,
			Target:      target,
			Deadline:    deadline,
		}
		if err := svc.CreateCampaign(cmd.Context(), req); err != nil {
			return err
		}
		fmt.Println("campaign created")
		return nil
	},
}

var pledgeCmd = &cobra.Command{
	Use:   "pledge <campaign-id> <amount>",
	Short: "Pledge an amount (in NEAR) to a campaign",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var id uint64
		if _, err := fmt.Sscanf(args[0], "%d", &id); err != nil {
			return fmt.Errorf("invalid campaign id %q", args[0])
		}
		svc, err := newUseCase()
		if err != nil {
			return err
		}
		if err := svc.Pledge(cmd.Context(), id, args[1]); err != nil {
			return err
		}
		fmt.Println("pledge submitted")
		return nil
	},
}

func init() {
	createCmd.Flags().StringVar(&imagePath, "image", "", "path to the campaign image")
	createCmd.Flags().StringVar(&title, "title", "", "campaign title")
	createCmd.Flags().StringVar(&description, "description", "", "campaign description")
	createCmd.Flags().StringVar(&target, "target", "", "target amount in NEAR")
	createCmd.Flags().StringVar(&deadline, "deadline", "", "deadline as YYYY-MM-DDTHH:MM")

	rootCmd.AddCommand(listCmd, donationsCmd, createCmd, pledgeCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
