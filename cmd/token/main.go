// Command token emite un JWT de personal para probar las rutas /api/mis.
//
//	go run ./cmd/token -staff ana -outlet out-centro -role manager
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jhoicas/restaurante-mis/pkg/config"
	"github.com/jhoicas/restaurante-mis/pkg/jwt"
)

func main() {
	staffID := flag.String("staff", "", "ID del empleado")
	outletID := flag.String("outlet", "", "outlet asignado")
	role := flag.String("role", jwt.RoleStaff, "admin | manager | staff")
	flag.Parse()

	if *staffID == "" {
		fmt.Fprintln(os.Stderr, "falta -staff")
		os.Exit(2)
	}
	switch *role {
	case jwt.RoleAdmin, jwt.RoleManager, jwt.RoleStaff:
	default:
		fmt.Fprintf(os.Stderr, "rol inválido: %q\n", *role)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		os.Exit(1)
	}
	tok, err := jwt.Generate(cfg.JWT.Secret, *staffID, *outletID, *role, cfg.JWT.Issuer, cfg.JWT.Expiration)
	if err != nil {
		fmt.Fprintln(os.Stderr, "generar token:", err)
		os.Exit(1)
	}
	fmt.Println(tok)
}
