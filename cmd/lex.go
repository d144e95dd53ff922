package main

import (
	"fmt"
	"time"

	"wenyan/internal"
)

var source string = `
吾有一數曰「甲」其值一也
恆為是
	若甲大於一萬者
		乃止也
	云云
	甲 其值甲加一也
云云
云甲
`

func main() {
	start := time.Now()
	tokens := internal.Tokenize(source)
	fmt.Println("Tokens:", len(tokens), "in", time.Since(start))

	start = time.Now()
	code, err := internal.Compile(source, internal.DefaultOptions())
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("Generated", len(code), "bytes in", time.Since(start))
}
