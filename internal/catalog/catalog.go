// Package catalog collects the commands of every AWS CLI service into an
// ordered catalog and renders it for shell completion tools.
package catalog

// Entry is one service and its commands.
type Entry struct {
	Service  string   `json:"service" yaml:"service" toml:"service"`
	Commands []string `json:"commands" yaml:"commands" toml:"commands"`
}

// Catalog maps service names to command lists, keeping services in the
// order they were added. Every service in a Catalog has at least one
// command.
type Catalog struct {
	entries []Entry
	index   map[string]int
}

// New returns an empty Catalog.
func New() *Catalog {
	return &Catalog{index: make(map[string]int)}
}

// Add stores commands under service. An empty command list is ignored and
// Add reports false. Adding a service twice replaces its commands in place.
func (c *Catalog) Add(service string, commands []string) bool {
	if len(commands) == 0 {
		return false
	}
	if i, ok := c.index[service]; ok {
		c.entries[i].Commands = commands
		return true
	}
	c.index[service] = len(c.entries)
	c.entries = append(c.entries, Entry{Service: service, Commands: commands})
	return true
}

// Lookup returns the commands stored for service.
func (c *Catalog) Lookup(service string) ([]string, bool) {
	i, ok := c.index[service]
	if !ok {
		return nil, false
	}
	return c.entries[i].Commands, true
}

// Len returns the number of services.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Services returns the service names in insertion order.
func (c *Catalog) Services() []string {
	names := make([]string, len(c.entries))
	for i, e := range c.entries {
		names[i] = e.Service
	}
	return names
}

// Entries returns a copy of the entries in insertion order.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Pairs flattens the catalog to "service:command" strings, services in
// insertion order and commands in list order.
func (c *Catalog) Pairs() []string {
	var pairs []string
	for _, e := range c.entries {
		for _, cmd := range e.Commands {
			pairs = append(pairs, e.Service+":"+cmd)
		}
	}
	return pairs
}
