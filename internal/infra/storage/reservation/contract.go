package reservation

import "github.com/tuj-devs/officehours-service/pkg/txmanager"

// DBExecutor is the query surface the repository needs; satisfied by
// *sql.DB and by the transaction the context may carry.
type DBExecutor = txmanager.DBExecutor
