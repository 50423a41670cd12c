package main

const mainHelp = `fwdsort - sorts lines of every input with a stable merge sort

usage:
  fwdsort [options] [file ...]

Each input is sorted on its own and printed in argument order.
A file named '-' or no files at all means standard input.
Lines longer than 16MiB are rejected.

options:
`
