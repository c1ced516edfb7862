// seed_clientes genera un script SQL para poblar el padrón de clientes a
// partir del CSV exportado del sistema anterior de la firma (codificado en
// ISO-8859-1, separado por punto y coma).
//
// Columnas esperadas: nombre;ruc;email;telefono;regimen;categoria;tarifa
// La tarifa es opcional (vacía = usar tarifario).
//
// Uso: go run ./cmd/seed_clientes [ruta/clientes.csv]
// Por defecto busca clientes.csv en el directorio actual.
// Escribe: internal/infrastructure/postgres/migrations/002_seed_clientes.sql
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/dvergara/Tributario-api/pkg/sri"
)

func main() {
	csvPath := "clientes.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	// El sistema anterior exporta en ISO-8859-1 (tildes y eñes).
	reader := csv.NewReader(transform.NewReader(f, charmap.ISO8859_1.NewDecoder()))
	reader.Comma = ';'
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}

	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "002_seed_clientes.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	out.WriteString("-- Padrón de clientes migrado del sistema anterior\n")
	out.WriteString("-- Generado desde " + filepath.Base(csvPath) + "\n\n")

	var ok, skipped int
	for i, rec := range records {
		if i == 0 && strings.EqualFold(strings.TrimSpace(rec[0]), "nombre") {
			continue // cabecera
		}
		if len(rec) < 6 {
			fmt.Fprintf(os.Stderr, "fila %d: columnas insuficientes, omitida\n", i+1)
			skipped++
			continue
		}
		name := strings.TrimSpace(rec[0])
		ruc := strings.TrimSpace(rec[1])
		email := strings.TrimSpace(rec[2])
		phone := strings.TrimSpace(rec[3])
		regime := strings.ToLower(strings.TrimSpace(rec[4]))
		category := strings.ToLower(strings.TrimSpace(rec[5]))

		if err := sri.ValidateIdentifier(ruc); err != nil {
			fmt.Fprintf(os.Stderr, "fila %d: RUC %q inválido (%v), omitida\n", i+1, ruc, err)
			skipped++
			continue
		}

		customFee := "NULL"
		if len(rec) > 6 && strings.TrimSpace(rec[6]) != "" {
			fee, err := decimal.NewFromString(strings.Replace(strings.TrimSpace(rec[6]), ",", ".", 1))
			if err != nil {
				fmt.Fprintf(os.Stderr, "fila %d: tarifa %q inválida, omitida\n", i+1, rec[6])
				skipped++
				continue
			}
			customFee = "'" + fee.StringFixed(2) + "'"
		}

		fmt.Fprintf(out, "INSERT INTO taxpayers (id, name, ruc, email, phone, regime, filing_category, is_active, custom_fee)\n")
		fmt.Fprintf(out, "VALUES ('%s', '%s', '%s', '%s', '%s', '%s', '%s', TRUE, %s)\n",
			uuid.NewString(), escapeSQL(name), ruc, escapeSQL(email), escapeSQL(phone),
			escapeSQL(regime), escapeSQL(category), customFee)
		out.WriteString("ON CONFLICT (ruc) DO UPDATE SET name = EXCLUDED.name, email = EXCLUDED.email,\n")
		out.WriteString("  phone = EXCLUDED.phone, regime = EXCLUDED.regime, filing_category = EXCLUDED.filing_category,\n")
		out.WriteString("  custom_fee = EXCLUDED.custom_fee, updated_at = now();\n\n")
		ok++
	}

	fmt.Printf("Generado %s: %d clientes, %d filas omitidas\n", outPath, ok, skipped)
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
