package dupname

//structpath:path SamePath Record::value_a
//structpath:path SamePath Record::value_b

type Record struct {
	value_a string
	value_b string
}
