// Command seedadmin inserts the first admin account so the review endpoints
// can be used on a fresh database.
//
//	go run ./cmd/seedadmin <username> <email> <password>
package main

import (
	"log"
	"os"

	"github.com/gabrielgilbord/Frantana-Booking/config"
	"github.com/gabrielgilbord/Frantana-Booking/infras/postgres"
	"github.com/gabrielgilbord/Frantana-Booking/shared/password"
)

const (
	argLength = 4
)

func main() {
	if len(os.Args) < argLength {
		log.Fatal("Usage: seedadmin <username> <email> <password>")
	}

	username := os.Args[1]
	email := os.Args[2]

	hash, err := password.Hash(os.Args[3])
	if err != nil {
		log.Fatal(err)
	}

	cfg := config.Get()

	conn := postgres.CreatePostgresWriteConn(*cfg)
	if conn == nil {
		log.Fatal("Failed to connect to database")
	}

	defer conn.Close()

	result, err := conn.Exec(
		`INSERT INTO admins (username, password, email, created_by, modified_by)
		 VALUES ($1, $2, $3, 'system', 'system')
		 ON CONFLICT (username) DO NOTHING`,
		username, hash, email,
	)
	if err != nil {
		log.Fatal(err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		log.Fatal(err)
	}

	if rows == 0 {
		log.Printf("Admin %q already exists, nothing to do", username)

		return
	}

	log.Printf("Admin %q created", username)
}
