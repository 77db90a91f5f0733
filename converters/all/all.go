package all

import (
	// Import all the converters so they register themselves
	_ "github.com/darianmavgo/xlsqlite/converters/csv"
	_ "github.com/darianmavgo/xlsqlite/converters/excel"
)
