package testutil

// ClusterConfigSchema describes the cluster descriptor datum.
const ClusterConfigSchema = `{
  "type": "record",
  "name": "ClusterConfig",
  "namespace": "com.snowplowanalytics.dataflowrunner",
  "fields": [
    {"name": "name", "type": "string"},
    {"name": "logUri", "type": "string"},
    {"name": "region", "type": "string"},
    {"name": "credentials", "type": {
      "type": "record", "name": "Credentials",
      "fields": [
        {"name": "accessKeyId", "type": "string"},
        {"name": "secretAccessKey", "type": "string"}
      ]}},
    {"name": "roles", "type": {
      "type": "record", "name": "Roles",
      "fields": [
        {"name": "jobflow", "type": "string"},
        {"name": "service", "type": "string"}
      ]}},
    {"name": "ec2", "type": {
      "type": "record", "name": "Ec2",
      "fields": [
        {"name": "amiVersion", "type": "string"},
        {"name": "keyName", "type": "string"},
        {"name": "location", "type": {
          "type": "record", "name": "Location",
          "fields": [
            {"name": "classic", "type": ["null", {
              "type": "record", "name": "Classic",
              "fields": [{"name": "availabilityZone", "type": "string"}]}], "default": null},
            {"name": "vpc", "type": ["null", {
              "type": "record", "name": "Vpc",
              "fields": [{"name": "subnetId", "type": "string"}]}], "default": null}
          ]}},
        {"name": "instances", "type": {
          "type": "record", "name": "Instances",
          "fields": [
            {"name": "master", "type": {
              "type": "record", "name": "Master",
              "fields": [{"name": "type", "type": "string"}]}},
            {"name": "core", "type": {
              "type": "record", "name": "Core",
              "fields": [
                {"name": "type", "type": "string"},
                {"name": "count", "type": "int"}
              ]}},
            {"name": "task", "type": {
              "type": "record", "name": "Task",
              "fields": [
                {"name": "type", "type": "string"},
                {"name": "count", "type": "int"},
                {"name": "bid", "type": "string"}
              ]}}
          ]}}
      ]}},
    {"name": "tags", "type": {"type": "array", "items": {
      "type": "record", "name": "Tag",
      "fields": [
        {"name": "key", "type": "string"},
        {"name": "value", "type": "string"}
      ]}}},
    {"name": "bootstrapActionConfigs", "type": {"type": "array", "items": {
      "type": "record", "name": "BootstrapActionConfig",
      "fields": [
        {"name": "name", "type": "string"},
        {"name": "scriptBootstrapAction", "type": {
          "type": "record", "name": "ScriptBootstrapAction",
          "fields": [
            {"name": "path", "type": "string"},
            {"name": "args", "type": {"type": "array", "items": "string"}}
          ]}}
      ]}}},
    {"name": "configurations", "type": {"type": "array", "items": {
      "type": "record", "name": "Configuration",
      "fields": [
        {"name": "classification", "type": "string"},
        {"name": "properties", "type": {"type": "map", "values": "string"}}
      ]}}}
  ]
}`

// PlaybookConfigSchema describes the playbook datum.
const PlaybookConfigSchema = `{
  "type": "record",
  "name": "PlaybookConfig",
  "namespace": "com.snowplowanalytics.dataflowrunner",
  "fields": [
    {"name": "region", "type": "string"},
    {"name": "credentials", "type": {
      "type": "record", "name": "Credentials",
      "fields": [
        {"name": "accessKeyId", "type": "string"},
        {"name": "secretAccessKey", "type": "string"}
      ]}},
    {"name": "steps", "type": {"type": "array", "items": {
      "type": "record", "name": "Step",
      "fields": [
        {"name": "type", "type": {"type": "enum", "name": "StepType", "symbols": ["CUSTOM_JAR"]}},
        {"name": "name", "type": "string"},
        {"name": "actionOnFailure", "type": {
          "type": "enum", "name": "ActionOnFailure",
          "symbols": ["TERMINATE_JOB_FLOW", "CANCEL_AND_WAIT", "CONTINUE"]}},
        {"name": "jar", "type": "string"},
        {"name": "arguments", "type": {"type": "array", "items": "string"}}
      ]}}}
  ]
}`
