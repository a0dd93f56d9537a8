package neo4j

const (
	cleanQuery = `MATCH (n:ContractFunction) DETACH DELETE n`

	indexQuery = `CREATE INDEX contract_function_id IF NOT EXISTS FOR (n:ContractFunction) ON (n.id)`

	nodeQuery = `UNWIND $batch AS row
		 MERGE (n:ContractFunction {id: row.id})
		 SET n.name = row.name, n.class = row.class, n.scope = row.scope, n.action = row.action,
		     n.service = row.service, n.language = row.language, n.file = row.file, n.line = row.line`

	edgeQuery = `UNWIND $batch AS row
		 MATCH (s:ContractFunction {id: row.source}), (t:ContractFunction {id: row.target})
		 MERGE (s)-[r:CALLS {kind: row.type}]->(t)`
)
