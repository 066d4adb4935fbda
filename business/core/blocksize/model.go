package blocksize

// Entry names a symbol of the model and describes it.
type Entry struct {
	Symbol      string
	Description string
}

// Constraint describes one of the numbered equations of the model.
type Constraint struct {
	ID          int
	Label       string // Short form used when reporting an outcome.
	Description string // Full statement including its range.
	Summary     bool   // Reported as one boolean even when checked per index.
}

// parameters lists the inputs of the model.
var parameters = []Entry{
	{"TR", "The set of transactions"},
	{"n", "The number of transactions"},
	{"TRi", "ith transaction"},
	{"Si", "Size of TRi in Byte"},
	{"CN", "Committing nodes set"},
	{"m", "The number of committing nodes"},
	{"CNk", "kth committing node"},
	{"T-VSk", "Time of ... CNk, the number of transactions that can store in a second"},
	{"T-MVk", "Time of ... CNk, the number of transactions that can store in a second"},
	{"T-DBk", "Time of ... CNk, the number of transactions that can store in a second"},
	{"Perfk", "Performance of CNk, the number of transactions that can store in a second"},
	{"BWk", "The bandwidth of CNk"},
	{"LS", "The maximum limit size of the block in byte"},
	{"LN", "The maximum limited number of transaction number existing in the block"},
	{"PCN", "The percentage of committing nodes that should store the block"},
	{"M", "Large constant used to relax (8) when yk is 0"},
}

// decisionVariables lists the variables an optimizer would choose.
var decisionVariables = []Entry{
	{"BSB", "The block size in byte"},
	{"BST", "The block size in the number of transactions"},
	{"xi", "1 iff TRi exists in the block, otherwise 0"},
	{"yk", "1 iff CNk can store the block in a second, otherwise 0"},
	{"STk", "The storing time of block by CNk"},
}

// constraints lists the equations (1) through (17) in order.
var constraints = []Constraint{
	{1, "Throughput (Transaction per second)", "Throughput (Transaction per second) = max BST", false},
	{2, "BSB", "BSB = Σ(xi * Si) for i = 1 to n", false},
	{3, "BST", "BST = Σxi for i = 1 to n", false},
	{4, "BSB <= LS", "BSB <= LS", false},
	{5, "BST <= LN", "BST <= LN", false},
	{6, "1 <= Σxi <= n", "1 <= Σxi <= n for i = 1 to n", false},
	{7, "STk", "STk = BST / Perfk + BSB / BWk for k = 1 to m", false},
	{8, "M(1 - yk) >= (STk - 1)", "M(1 - yk) >= (STk - 1) for k = 1 to m", false},
	{9, "Σyk = m", "Σyk = m for k = 1 to m", false},
	{10, "xi ∈ {0, 1}", "xi ∈ {0, 1} for i = 1 to n", true},
	{11, "yk ∈ {0, 1}", "yk ∈ {0, 1} for k = 1 to m", true},
	{12, "STk ∈ R+", "STk ∈ R+ for k = 1 to m", true},
	{13, "STk - max{BST/Perfk, BSB/BWk} * yk ≤ 0", "STk - max{BST/Perfk, BSB/BWk} * yk ≤ 0 for k = 1 to m", false},
	{14, "Σyk ≥ PCN * m", "Σyk ≥ PCN * m for k = 1 to m", false},
	{15, "Σxi ≥ 1", "Σxi ≥ 1 for i = 1 to n", false},
	{16, "BSB - max(Si) * xi ≤ LS", "BSB - max(Si) * xi ≤ LS", false},
	{17, "BST - xi ≤ LN", "BST - xi ≤ LN", false},
}

// Parameters returns the description of the model's parameters.
func Parameters() []Entry {
	return append([]Entry(nil), parameters...)
}

// DecisionVariables returns the description of the model's decision variables.
func DecisionVariables() []Entry {
	return append([]Entry(nil), decisionVariables...)
}

// Constraints returns the numbered constraints of the model in order.
func Constraints() []Constraint {
	return append([]Constraint(nil), constraints...)
}

// LookupConstraint returns the constraint with the specified id.
func LookupConstraint(id int) (Constraint, bool) {
	if id < 1 || id > len(constraints) {
		return Constraint{}, false
	}
	return constraints[id-1], true
}
