//go:build dev

package dashboard

import "io/fs"

// distFS is nil in dev builds; the preview page is then served by a frontend
// dev server that proxies /api to authdeck.
var distFS fs.FS
