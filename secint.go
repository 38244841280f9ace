/*
Package secint provides fixed-width public and secret machine integers for writing
cryptographic algorithm specifications once, generically, over both families.
A public integer behaves like an ordinary built-in integer; a secret integer hides
its value behind an explicit declassification step and offers branchless bitmask
comparisons, so that a single generic algorithm body can be checked against plain
integers and then instantiated with secrecy tracking, without duplicating the
algorithm text.
*/
package secint
