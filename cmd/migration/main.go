package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/orozcodev/comedor-pos/internal/infrastructure/gateway"
)

func main() {
	// Cargar variables de entorno
	if err := godotenv.Load(); err != nil {
		log.Printf("Aviso: archivo .env no encontrado: %v", err)
	}

	if err := gateway.RunMigrations(); err != nil {
		log.Fatalf("Error al ejecutar las migraciones: %v", err)
	}

	log.Println("Migraciones ejecutadas con éxito")
}
