package cli

import (
	"encoding/json"
	"io"
	"os"

	"medical-tracker/internal/domain/entity"
	"medical-tracker/internal/usecase"
	"medical-tracker/pkg/response"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const (
	defaultExportFile = "medical_tracker_data.json"
	clearConfirmation = "DELETE"
	stdioPath         = "-"
)

type DataHandler struct {
	dataUsecase usecase.DataUsecase
	log         *logrus.Logger
}

func NewDataHandler(dataUsecase usecase.DataUsecase, log *logrus.Logger) *DataHandler {
	return &DataHandler{
		dataUsecase: dataUsecase,
		log:         log,
	}
}

func (h *DataHandler) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "data",
		Short: "Export, import or clear stored data",
	}
	cmd.AddCommand(
		h.exportCmd(),
		h.importCmd(),
		h.clearCmd(),
	)
	return cmd
}

type exportResult struct {
	File  string         `json:"file"`
	Count map[string]int `json:"count"`
}

func (h *DataHandler) exportCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write your records to a JSON file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snapshot, err := h.dataUsecase.ExportData(cmd.Context())
			if err != nil {
				return fail(cmd, err, "Failed to export data")
			}

			if out == stdioPath {
				return response.JSON(cmd.OutOrStdout(), snapshot)
			}

			payload, err := json.MarshalIndent(snapshot, "", "  ")
			if err != nil {
				h.log.Warnf("Failed to encode export: %+v", err)
				return fail(cmd, err, "Failed to export data")
			}
			if err := os.WriteFile(out, payload, 0o600); err != nil {
				h.log.Warnf("Failed to write export file %s: %+v", out, err)
				return fail(cmd, err, "Failed to write export file")
			}

			return success(cmd, "Data exported", exportResult{
				File: out,
				Count: map[string]int{
					"appointments":    len(snapshot.Appointments),
					"doctors":         len(snapshot.Doctors),
					"medications":     len(snapshot.Medications),
					"diagnoses":       len(snapshot.Diagnoses),
					"testResults":     len(snapshot.TestResults),
					"medicalFeedback": len(snapshot.MedicalFeedback),
				},
			})
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", defaultExportFile, "output file, - for stdout")
	return cmd
}

func (h *DataHandler) importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace your records with the contents of an export file",
		Long: "Replace your records with the contents of an export file.\n" +
			"Pass - to read the export from stdin.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := h.readInput(cmd, args[0])
			if err != nil {
				h.log.Warnf("Failed to read import file %s: %+v", args[0], err)
				return failMessage(cmd, "Failed to read import file")
			}

			var snapshot entity.Snapshot
			if err := json.Unmarshal(payload, &snapshot); err != nil {
				return failMessage(cmd, "Invalid data format")
			}

			if err := h.dataUsecase.ImportData(cmd.Context(), &snapshot); err != nil {
				return fail(cmd, err, "Failed to import data")
			}
			return success(cmd, "Data imported", nil)
		},
	}
}

func (h *DataHandler) readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == stdioPath {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(path)
}

func (h *DataHandler) clearCmd() *cobra.Command {
	var confirm string
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every stored record of every user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if confirm != clearConfirmation {
				return failMessage(cmd, "Type --confirm "+clearConfirmation+" to clear all data")
			}

			if err := h.dataUsecase.ClearDatabase(cmd.Context()); err != nil {
				return fail(cmd, err, "Failed to clear data")
			}
			return success(cmd, "All data cleared", nil)
		},
	}
	cmd.Flags().StringVar(&confirm, "confirm", "", "must be "+clearConfirmation)
	return cmd
}
