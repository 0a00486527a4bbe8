// Package sure provides confirmation-gated values.
//
// A Gate holds either an already computed value or a deferred function. The
// function runs only when the holder explicitly confirms, so libraries can
// return a Gate from dangerous operations and force callers to decide:
//
//	func DropTable(db *sql.DB, name string) *sure.Gate[error] {
//		return sure.Defer(func() error {
//			_, err := db.Exec("DROP TABLE " + name)
//			return err
//		})
//	}
//
//	err := DropTable(db, "users").Confirm() // runs the statement
//	DropTable(db, "users").Decline()        // never runs it
//
// A Gate is consumed by the first Confirm or Decline; resolving it again is a
// programming error and panics with ErrAlreadyResolved.
//
// Policy driven resolution (ask / auto / deny, allow and block lists) with
// optional OpenTelemetry tracing is available through Resolver and Resolve.
package sure
