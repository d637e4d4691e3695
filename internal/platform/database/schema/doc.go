// Copyright (c) 2026 Bibble. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package schema names every table and column the stores touch.

Stores build SQL with fmt.Sprintf over these definitions instead of string
literals, so a column rename is a one-line change here and a compile error
anywhere it was missed.
*/
package schema
