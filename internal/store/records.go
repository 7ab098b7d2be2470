package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"
	"os"

	goduckdb "github.com/marcboeker/go-duckdb"

	"github.com/omicslab/proteoqc/internal/protein"
	"github.com/omicslab/proteoqc/internal/qc"
)

// WriteRecords batch-inserts labeled records using the Appender API.
// Duplicate (gene, accession) rows are deduplicated before writing.
func (s *Store) WriteRecords(records []*qc.LabeledRecord) error {
	if len(records) == 0 {
		return nil
	}

	type key struct{ gene, accession string }
	seen := make(map[key]bool, len(records))
	deduped := make([]*qc.LabeledRecord, 0, len(records))
	for _, r := range records {
		k := key{r.Gene, r.Accession}
		if !seen[k] {
			seen[k] = true
			deduped = append(deduped, r)
		}
	}

	conn, err := s.db.Conn(context.Background())
	if err != nil {
		return fmt.Errorf("get connection: %w", err)
	}
	defer conn.Close()

	var appender *goduckdb.Appender
	if err := conn.Raw(func(driverConn any) error {
		var err error
		appender, err = goduckdb.NewAppenderFromConn(driverConn.(driver.Conn), "", "protein_records")
		return err
	}); err != nil {
		return fmt.Errorf("create appender: %w", err)
	}
	defer appender.Close()

	for _, r := range deduped {
		if err := appender.AppendRow(
			r.Accession, r.Gene, r.Description, r.UniProtID,
			r.AlternateNames, r.MouseGeneID, r.CellularLocation, r.FunctionalClass,
			float64(r.VehicleRep1), float64(r.VehicleRep2),
			float64(r.VehicleMean), float64(r.VehicleSD),
			float64(r.TreatmentRep1), float64(r.TreatmentRep2),
			float64(r.TreatmentMean), float64(r.TreatmentSD),
			float64(r.FoldChange), float64(r.Log2FoldChange), float64(r.Log10FoldChange),
			r.UniProtValid,
			string(r.Labels.Completeness), string(r.Labels.FCType), string(r.Labels.Confidence),
		); err != nil {
			return fmt.Errorf("append protein record: %w", err)
		}
	}

	return appender.Flush()
}

// RecordCount returns the number of stored protein records.
func (s *Store) RecordCount() (int, error) {
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM protein_records").Scan(&count); err != nil {
		return 0, fmt.Errorf("count records: %w", err)
	}
	return count, nil
}

// CountByConfidence returns record counts per confidence level.
func (s *Store) CountByConfidence() (map[qc.Confidence]int, error) {
	rows, err := s.db.Query(`SELECT confidence_level, COUNT(*)
		FROM protein_records GROUP BY confidence_level`)
	if err != nil {
		return nil, fmt.Errorf("count by confidence: %w", err)
	}
	defer rows.Close()

	counts := make(map[qc.Confidence]int)
	for rows.Next() {
		var level string
		var n int
		if err := rows.Scan(&level, &n); err != nil {
			return nil, fmt.Errorf("scan confidence count: %w", err)
		}
		counts[qc.Confidence(level)] = n
	}
	return counts, rows.Err()
}

// LookupGene returns the stored record for a gene symbol, or nil if the
// gene is not present.
func (s *Store) LookupGene(gene string) (*qc.LabeledRecord, error) {
	row := s.db.QueryRow(`SELECT
		accession, gene, description, functional_class,
		vehicle_mean, treatment_mean, fold_change, log2_fold_change,
		uniprot_valid, replicate_completeness, fc_type, confidence_level
		FROM protein_records WHERE gene=?`, gene)

	var r qc.LabeledRecord
	var vehicleMean, treatmentMean, foldChange, log2FC float64
	var completeness, fcType, confidence string
	err := row.Scan(
		&r.Accession, &r.Gene, &r.Description, &r.FunctionalClass,
		&vehicleMean, &treatmentMean, &foldChange, &log2FC,
		&r.UniProtValid, &completeness, &fcType, &confidence,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("lookup gene %s: %w", gene, err)
	}

	r.VehicleMean = protein.Float(vehicleMean)
	r.TreatmentMean = protein.Float(treatmentMean)
	r.FoldChange = protein.Float(foldChange)
	r.Log2FoldChange = protein.Float(log2FC)
	r.Labels = qc.Labels{
		Completeness: qc.Completeness(completeness),
		FCType:       qc.FCType(fcType),
		Confidence:   qc.Confidence(confidence),
	}
	return &r, nil
}

// RecordRun stores run provenance for the given source file.
func (s *Store) RecordRun(sourcePath string, recordCount int) error {
	var size int64
	if info, err := os.Stat(sourcePath); err == nil {
		size = info.Size()
	}
	_, err := s.db.Exec(
		"INSERT INTO runs (source_path, source_size, record_count) VALUES (?, ?, ?)",
		sourcePath, size, recordCount)
	if err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	return nil
}
