// user_seed creates a platform user record in Badger and prints a signed
// token for it, so a fresh environment can exercise the API without the
// account service running.
package main

import (
	"flag"
	"log"
	"os"
	"strings"
	"time"

	"grouplink/auth"
	"grouplink/infrastructure/storage"

	"github.com/dgraph-io/badger/v4"
	"github.com/olekukonko/tablewriter"
)

func main() {
	dbPath := flag.String("db", "/tmp/badger", "Path to badger DB")
	email := flag.String("email", "", "User email")
	phone := flag.String("phone", "", "Registered phone number, digits only")
	tokenDuration := flag.Duration("token-duration", 24*time.Hour, "Validity of the printed token")
	flag.Parse()

	if *email == "" || *phone == "" {
		log.Fatal("Both -email and -phone are required")
	}

	opts := badger.DefaultOptions(*dbPath).
		WithLogger(nil).
		WithBypassLockGuard(true)

	db, err := badger.Open(opts)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	repo := storage.NewUserRepository(db)
	id, err := repo.CreateUser(*email, *phone)
	if err != nil {
		log.Fatal("Error while creating user: ", err)
	}

	user, err := repo.GetUserByID(id)
	if err != nil {
		log.Fatal("Error while reading user back: ", err)
	}

	token, err := auth.GenerateToken(user.ID, user.Roles, *tokenDuration)
	if err != nil {
		log.Fatal("Error while signing token: ", err)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Email", "Phone", "Roles", "Token"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	table.Append([]string{user.ID, user.Email, user.Phone,
		strings.Join(user.Roles, ","), token})
	table.Render()
}
