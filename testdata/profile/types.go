package profile

//structpath:path ValueStrPath TestParent::value_str
//structpath:path ChildStrPath TestParent::value_child.child_value_str; delim="/", case="camel"
//structpath:path MixedPath TestParent::value_str, TestChild::child_value_str
//structpath:path OptChildPath TestParent::opt_value_child~child_value_str
//structpath:paths ParentColumns TestParent::{value_str, value_num}
//structpath:paths CrossColumns TestParent::value_str, TestChild::child_value_str

type TestChild struct {
	child_value_str string
	child_value_num uint64
}

type TestParent struct {
	value_str       string
	value_num       uint64
	value_child     TestChild
	opt_value_child *TestChild
}
