// seedcodes genera el script SQL que puebla el catálogo koaj_codes a partir
// de la tabla de prendas incorporada en el parser.
//
// Uso: go run ./cmd/seedcodes [ruta/salida.sql]
// Por defecto escribe: internal/infrastructure/postgres/migrations/002_seed_koaj_codes.sql
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/koajpc/backoffice-api/internal/domain/entity"
	"github.com/koajpc/backoffice-api/internal/domain/sku"
)

func main() {
	outPath := filepath.Join("internal", "infrastructure", "postgres", "migrations", "002_seed_koaj_codes.sql")
	if len(os.Args) > 1 {
		outPath = os.Args[1]
	}

	var b strings.Builder
	b.WriteString("-- Catálogo de códigos de prenda KOAJ.\n")
	b.WriteString("-- Generado por cmd/seedcodes; no editar a mano.\n\n")

	for _, entry := range sku.GarmentCatalog() {
		b.WriteString(fmt.Sprintf(
			"INSERT INTO koaj_codes (code, category, description, applies_to, is_active)\n"+
				"VALUES ('%s', '%s', '', '%s', TRUE)\n"+
				"ON CONFLICT (code) DO UPDATE SET category = EXCLUDED.category, applies_to = EXCLUDED.applies_to;\n",
			entry.Code, escape(entry.Type), appliesTo(entry.Type),
		))
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "crear directorio de salida: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(outPath, []byte(b.String()), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "escribir %s: %v\n", outPath, err)
		os.Exit(1)
	}
	fmt.Printf("escrito %s (%d códigos)\n", outPath, len(sku.GarmentCatalog()))
}

// appliesTo deriva el ámbito del código a partir del nombre de la prenda.
func appliesTo(garmentType string) string {
	switch sku.DepartmentFromName(garmentType) {
	case sku.DeptHombre:
		return entity.AppliesHombre
	case sku.DeptMujer:
		return entity.AppliesMujer
	case sku.DeptNino:
		return entity.AppliesNino
	case sku.DeptNina:
		return entity.AppliesNina
	default:
		return entity.AppliesTodos
	}
}

func escape(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
