package cmd

// must panics on a flag binding error. BindPFlag only fails for an undefined
// flag, which is a programming error caught at init.
func must(err error) {
	if err != nil {
		panic(err)
	}
}
