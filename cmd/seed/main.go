// seed genera un script SQL de datos de demostración (usuario demo, categorías
// y productos) a partir de un CSV de catálogo.
//
// Uso: go run ./cmd/seed [-latin1] [ruta/productos.csv]
// Por defecto busca data/demo/productos.csv. Con -latin1 decodifica el CSV
// desde ISO-8859-1 (exportaciones de hojas de cálculo antiguas).
// Escribe: migrations/002_seed_demo.sql
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

const (
	demoEmail    = "demo@ventaplus.local"
	demoPassword = "demo123"
)

type productoCSV struct {
	nombre    string
	categoria string
	costo     string
	precio    string
	stock     string
}

func main() {
	latin1 := flag.Bool("latin1", false, "decodificar el CSV desde ISO-8859-1")
	flag.Parse()

	csvPath := filepath.Join("data", "demo", "productos.csv")
	if flag.NArg() > 0 {
		csvPath = flag.Arg(0)
	}

	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	var reader io.Reader = f
	if *latin1 {
		reader = transform.NewReader(f, charmap.ISO8859_1.NewDecoder())
	}

	rows, err := leerProductos(reader)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}

	// Categorías únicas, ordenadas para salida estable
	catSet := make(map[string]struct{})
	for _, p := range rows {
		if p.categoria != "" {
			catSet[p.categoria] = struct{}{}
		}
	}
	var categorias []string
	for c := range catSet {
		categorias = append(categorias, c)
	}
	sort.Strings(categorias)

	outPath := filepath.Join(findModuleRoot(), "migrations", "002_seed_demo.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	out.WriteString("-- Datos de demostración: usuario demo, categorías y catálogo de productos\n")
	out.WriteString("-- Generado por cmd/seed\n\n")

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Hashear contraseña demo: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(out, "INSERT INTO usuarios (nombre, email, password_hash) VALUES\n")
	fmt.Fprintf(out, "  ('Demo', '%s', '%s')\n", demoEmail, string(hash))
	out.WriteString("ON CONFLICT (email) DO NOTHING;\n\n")

	for _, c := range categorias {
		fmt.Fprintf(out, "INSERT INTO categorias (usuario_id, nombre)\n")
		fmt.Fprintf(out, "SELECT id, '%s' FROM usuarios WHERE email = '%s'\n", escapeSQL(c), demoEmail)
		out.WriteString("ON CONFLICT (usuario_id, nombre) DO NOTHING;\n")
	}
	out.WriteString("\n")

	for _, p := range rows {
		fmt.Fprintf(out, "INSERT INTO productos (usuario_id, nombre, costo_promedio, precio_venta, stock, categoria_id)\n")
		fmt.Fprintf(out, "SELECT u.id, '%s', %s, %s, %s, c.id\n",
			escapeSQL(p.nombre), p.costo, p.precio, p.stock)
		fmt.Fprintf(out, "FROM usuarios u\n")
		fmt.Fprintf(out, "LEFT JOIN categorias c ON c.usuario_id = u.id AND c.nombre = '%s'\n", escapeSQL(p.categoria))
		fmt.Fprintf(out, "WHERE u.email = '%s';\n", demoEmail)
	}

	fmt.Printf("Generado %s: %d categorías, %d productos\n", outPath, len(categorias), len(rows))
}

// leerProductos parsea el CSV con cabecera nombre,categoria,costo_promedio,precio_venta,stock.
func leerProductos(r io.Reader) ([]productoCSV, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("el CSV no tiene filas de datos")
	}

	var rows []productoCSV
	for i, rec := range records[1:] {
		if len(rec) < 5 {
			return nil, fmt.Errorf("fila %d: se esperan 5 columnas, hay %d", i+2, len(rec))
		}
		p := productoCSV{
			nombre:    strings.TrimSpace(rec[0]),
			categoria: strings.TrimSpace(rec[1]),
			costo:     strings.TrimSpace(rec[2]),
			precio:    strings.TrimSpace(rec[3]),
			stock:     strings.TrimSpace(rec[4]),
		}
		if p.nombre == "" {
			continue
		}
		if p.costo == "" {
			p.costo = "0"
		}
		if p.precio == "" {
			p.precio = "0"
		}
		if p.stock == "" {
			p.stock = "0"
		}
		rows = append(rows, p)
	}
	return rows, nil
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
